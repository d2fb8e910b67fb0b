package mnemonic

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/domain"
	"github.com/ryft-xyz/ryft-indexer/internal/ratelimit"
)

const PROVIDER_NAME = domain.ProviderMnemonic

var ErrNoAPIKey = errors.New("no API key provided")

// TrendingBy selects the ranking dimension of the top collections endpoint
type TrendingBy string

const (
	TrendingBySales  TrendingBy = "by_sales_count"
	TrendingByVolume TrendingBy = "by_sales_volume"
	TrendingByPrice  TrendingBy = "by_avg_price"
)

// OwnedToken is one token in a by_owner page
type OwnedToken struct {
	ContractAddress string         `json:"contractAddress"`
	TokenID         string         `json:"tokenId"`
	Type            string         `json:"type"`
	Metadata        *TokenMetadata `json:"metadata"`
}

// TokenMetadata is the metadata attached to an owned token
type TokenMetadata struct {
	Name     string `json:"name"`
	Image    *Image `json:"image,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// Image carries the image URI of a token
type Image struct {
	URI string `json:"uri"`
}

// WalletNFTsResponse is one page of a wallet's owned tokens
type WalletNFTsResponse struct {
	Tokens []OwnedToken `json:"tokens"`
}

// BlockchainEvent locates a transfer on chain
type BlockchainEvent struct {
	TxHash         string `json:"txHash"`
	BlockNumber    string `json:"blockNumber"`
	BlockTimestamp string `json:"blockTimestamp"`
}

// TransferParty is the sender or recipient of a transfer
type TransferParty struct {
	Address string `json:"address"`
}

// TransferPayment carries what the recipient paid
type TransferPayment struct {
	TotalEth string `json:"totalEth"`
	TotalUsd string `json:"totalUsd"`
}

// Transfer is one NFT transfer of a collection
type Transfer struct {
	ContractAddress string           `json:"contractAddress"`
	TokenID         string           `json:"tokenId"`
	TransferType    string           `json:"transferType"`
	Quantity        string           `json:"quantity"`
	Sender          TransferParty    `json:"sender"`
	Recipient       TransferParty    `json:"recipient"`
	RecipientPaid   *TransferPayment `json:"recipientPaid"`
	BlockchainEvent BlockchainEvent  `json:"blockchainEvent"`
}

// Transfer type values used by the transfers endpoint
const (
	TransferTypeMint = "TRANSFER_TYPE_MINT"
	TransferTypeBurn = "TRANSFER_TYPE_BURN"
)

// TransfersResponse is one page of a collection's transfers
type TransfersResponse struct {
	NFTTransfers []Transfer `json:"nftTransfers"`
}

// DataPoint is one bucket of a 30-day history series
type DataPoint struct {
	Timestamp string `json:"timestamp"`
	Count     string `json:"count,omitempty"`
	Min       string `json:"min,omitempty"`
	Max       string `json:"max,omitempty"`
	Avg       string `json:"avg,omitempty"`
}

// DataPointsResponse is a history series response
type DataPointsResponse struct {
	DataPoints []DataPoint `json:"dataPoints"`
}

// TrendingCollection is one entry of a top collections response
type TrendingCollection struct {
	ContractAddress string `json:"contractAddress"`
	SalesVolume     string `json:"salesVolume,omitempty"`
	SalesCount      string `json:"salesCount,omitempty"`
	AvgPrice        string `json:"avgPrice,omitempty"`
}

// TrendingResponse is the top collections response
type TrendingResponse struct {
	Collections []TrendingCollection `json:"collections"`
}

// ENSEntity is one resolved ENS name of a wallet
type ENSEntity struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ENSResponse is the by_address ENS lookup response
type ENSResponse struct {
	Entities []ENSEntity `json:"entities"`
}

// Client defines the interface for Mnemonic client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/mnemonic_client.go -package=mocks -mock_names=Client=MockMnemonicClient
type Client interface {
	// GetWalletNFTs fetches one page of a wallet's owned tokens
	GetWalletNFTs(ctx context.Context, walletAddress string, limit, offset int) (*WalletNFTsResponse, error)

	// GetCollectionTransfers fetches one page of a collection's transfers after the given timestamp
	GetCollectionTransfers(ctx context.Context, contractAddress string, limit, offset int, since time.Time) (*TransfersResponse, error)

	// GetOwnersCountHistory fetches the 30-day daily owners count series of a collection
	GetOwnersCountHistory(ctx context.Context, contractAddress string) (*DataPointsResponse, error)

	// GetPriceHistory fetches the 30-day daily price series of a collection
	GetPriceHistory(ctx context.Context, contractAddress string) (*DataPointsResponse, error)

	// GetTrendingCollections fetches the top collections over the last day
	GetTrendingCollections(ctx context.Context, by TrendingBy, limit, offset int) (*TrendingResponse, error)

	// GetENSDomains resolves the ENS names registered to a wallet
	GetENSDomains(ctx context.Context, walletAddress string) (*ENSResponse, error)
}

// MnemonicClient implements the Mnemonic REST client
type MnemonicClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	json           adapter.JSON
}

// NewClient creates a new Mnemonic client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL, apiKey string, json adapter.JSON) Client {
	return &MnemonicClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         apiURL,
		apiKey:         apiKey,
		json:           json,
	}
}

// GetWalletNFTs fetches one page of a wallet's owned tokens
func (c *MnemonicClient) GetWalletNFTs(ctx context.Context, walletAddress string, limit, offset int) (*WalletNFTsResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("sortDirection", "SORT_DIRECTION_ASC")

	reqURL := fmt.Sprintf("%s/tokens/v1beta1/by_owner/%s?%s",
		c.apiURL, strings.ToLower(walletAddress), q.Encode())

	var response WalletNFTsResponse
	if err := c.get(ctx, reqURL, &response); err != nil {
		return nil, fmt.Errorf("failed to call Mnemonic by_owner: %w", err)
	}

	return &response, nil
}

// GetCollectionTransfers fetches one page of a collection's transfers after the given timestamp
func (c *MnemonicClient) GetCollectionTransfers(ctx context.Context, contractAddress string, limit, offset int, since time.Time) (*TransfersResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("sortDirection", "SORT_DIRECTION_ASC")
	q.Set("blockTimestampGt", since.UTC().Format(time.RFC3339))
	q.Set("contractAddress", strings.ToLower(contractAddress))
	q.Add("tokenTypes", "TOKEN_TYPE_ERC721")
	q.Add("tokenTypes", "TOKEN_TYPE_ERC1155")

	reqURL := fmt.Sprintf("%s/transfers/v1beta1/nft?%s", c.apiURL, q.Encode())

	var response TransfersResponse
	if err := c.get(ctx, reqURL, &response); err != nil {
		return nil, fmt.Errorf("failed to call Mnemonic transfers: %w", err)
	}

	return &response, nil
}

// GetOwnersCountHistory fetches the 30-day daily owners count series of a collection
func (c *MnemonicClient) GetOwnersCountHistory(ctx context.Context, contractAddress string) (*DataPointsResponse, error) {
	reqURL := fmt.Sprintf("%s/collections/v1beta1/owners_count/%s?duration=DURATION_30_DAYS&groupByPeriod=GROUP_BY_PERIOD_1_DAY",
		c.apiURL, strings.ToLower(contractAddress))

	var response DataPointsResponse
	if err := c.get(ctx, reqURL, &response); err != nil {
		return nil, fmt.Errorf("failed to call Mnemonic owners_count: %w", err)
	}

	return &response, nil
}

// GetPriceHistory fetches the 30-day daily price series of a collection
func (c *MnemonicClient) GetPriceHistory(ctx context.Context, contractAddress string) (*DataPointsResponse, error) {
	reqURL := fmt.Sprintf("%s/pricing/v1beta1/prices/by_contract/%s?duration=DURATION_30_DAYS&groupByPeriod=GROUP_BY_PERIOD_1_DAY",
		c.apiURL, strings.ToLower(contractAddress))

	var response DataPointsResponse
	if err := c.get(ctx, reqURL, &response); err != nil {
		return nil, fmt.Errorf("failed to call Mnemonic prices by_contract: %w", err)
	}

	return &response, nil
}

// GetTrendingCollections fetches the top collections over the last day
func (c *MnemonicClient) GetTrendingCollections(ctx context.Context, by TrendingBy, limit, offset int) (*TrendingResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	q.Set("duration", "DURATION_1_DAY")

	reqURL := fmt.Sprintf("%s/collections/v1beta1/top/%s?%s", c.apiURL, by, q.Encode())

	var response TrendingResponse
	if err := c.get(ctx, reqURL, &response); err != nil {
		return nil, fmt.Errorf("failed to call Mnemonic top collections: %w", err)
	}

	return &response, nil
}

// GetENSDomains resolves the ENS names registered to a wallet
func (c *MnemonicClient) GetENSDomains(ctx context.Context, walletAddress string) (*ENSResponse, error) {
	reqURL := fmt.Sprintf("%s/ens/v1beta1/entity/by_address/%s", c.apiURL, strings.ToLower(walletAddress))

	var response ENSResponse
	if err := c.get(ctx, reqURL, &response); err != nil {
		return nil, fmt.Errorf("failed to call Mnemonic ens by_address: %w", err)
	}

	return &response, nil
}

// get performs a rate-limited GET and decodes the response
func (c *MnemonicClient) get(ctx context.Context, reqURL string, result interface{}) error {
	if c.apiKey == "" {
		return ErrNoAPIKey
	}

	headers := map[string]string{
		"X-API-Key": c.apiKey,
		"Accept":    "application/json",
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, headers)
	})
	if err != nil {
		return err
	}

	if err := c.json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	return nil
}
