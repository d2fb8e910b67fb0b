package coingecko

import (
	"context"
	"fmt"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/domain"
	"github.com/ryft-xyz/ryft-indexer/internal/ratelimit"
)

const PROVIDER_NAME = domain.ProviderCoinGecko

type simplePriceResponse struct {
	Ethereum struct {
		USD float64 `json:"usd"`
	} `json:"ethereum"`
}

// Client defines the interface for CoinGecko client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/coingecko_client.go -package=mocks -mock_names=Client=MockCoinGeckoClient
type Client interface {
	// GetEthPriceUSD fetches the ETH/USD spot price
	GetEthPriceUSD(ctx context.Context) (float64, error)
}

// CoinGeckoClient implements the CoinGecko simple price client.
// The endpoint needs no API key at the free tier.
type CoinGeckoClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	json           adapter.JSON
}

// NewClient creates a new CoinGecko client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, json adapter.JSON) Client {
	return &CoinGeckoClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		json:           json,
	}
}

// GetEthPriceUSD fetches the ETH/USD spot price
func (c *CoinGeckoClient) GetEthPriceUSD(ctx context.Context) (float64, error) {
	reqURL := fmt.Sprintf("%s/simple/price?ids=ethereum&vs_currencies=usd", c.apiURL)
	headers := map[string]string{"Accept": "application/json"}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, headers)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to call CoinGecko simple price: %w", err)
	}

	var response simplePriceResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	if response.Ethereum.USD <= 0 {
		return 0, fmt.Errorf("%w: missing ethereum price", domain.ErrMalformedPayload)
	}

	return response.Ethereum.USD, nil
}
