package nftport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/domain"
	"github.com/ryft-xyz/ryft-indexer/internal/ratelimit"
)

const PROVIDER_NAME = domain.ProviderNFTPort

var ErrNoAPIKey = errors.New("no API key provided")

// ContractStatistics is the statistics member of a getContractStatistics response
type ContractStatistics struct {
	FloorPrice         float64 `json:"floor_price"`
	OneDayAveragePrice float64 `json:"one_day_average_price"`
	OneDaySales        int64   `json:"one_day_sales"`
	OneDayVolume       float64 `json:"one_day_volume"`
	TotalSupply        int64   `json:"total_supply"`
	NumOwners          int64   `json:"num_owners"`
}

type apiError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

type statisticsResponse struct {
	Response   string              `json:"response"`
	Statistics *ContractStatistics `json:"statistics"`
	Error      *apiError           `json:"error"`
}

// Client defines the interface for NFTPort client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/nftport_client.go -package=mocks -mock_names=Client=MockNFTPortClient
type Client interface {
	// GetContractStatistics fetches sales statistics for a collection.
	// Returns domain.ErrContractNotFound when the provider does not know
	// the contract, which is permanent for that contract.
	GetContractStatistics(ctx context.Context, contractAddress string) (*ContractStatistics, error)
}

// NFTPortClient implements the NFTPort REST client
type NFTPortClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	json           adapter.JSON
}

// NewClient creates a new NFTPort client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL, apiKey string, json adapter.JSON) Client {
	return &NFTPortClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		apiKey:         apiKey,
		json:           json,
	}
}

// GetContractStatistics fetches sales statistics for a collection
func (c *NFTPortClient) GetContractStatistics(ctx context.Context, contractAddress string) (*ContractStatistics, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	reqURL := fmt.Sprintf("%s/transactions/stats/%s?chain=ethereum", c.apiURL, strings.ToLower(contractAddress))
	headers := map[string]string{
		"Authorization": c.apiKey,
		"Accept":        "application/json",
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, headers)
	})
	if err != nil {
		var statusErr *adapter.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrContractNotFound, contractAddress)
		}
		return nil, fmt.Errorf("failed to call NFTPort statistics: %w", err)
	}

	var response statisticsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	// NFTPort also embeds errors in 200 envelopes
	if response.Error != nil {
		switch response.Error.StatusCode {
		case http.StatusNotFound:
			return nil, fmt.Errorf("%w: %s", domain.ErrContractNotFound, contractAddress)
		case http.StatusTooManyRequests:
			return nil, fmt.Errorf("%w: %s", domain.ErrRateLimitExceeded, response.Error.Message)
		default:
			return nil, fmt.Errorf("NFTPort statistics error %d: %s", response.Error.StatusCode, response.Error.Message)
		}
	}

	if response.Statistics == nil {
		return nil, fmt.Errorf("%w: missing statistics", domain.ErrMalformedPayload)
	}

	return response.Statistics, nil
}
