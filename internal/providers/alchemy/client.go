package alchemy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/domain"
	"github.com/ryft-xyz/ryft-indexer/internal/ratelimit"
)

// Provider names registered with the rate limiter. The NFT API and the
// JSON-RPC endpoint have separate throughput ceilings.
const (
	PROVIDER_NAME_NFT = domain.ProviderAlchemyNFT
	PROVIDER_NAME_RPC = domain.ProviderAlchemyRPC
)

var ErrNoAPIKey = errors.New("no API key provided")

const collectionPageSize = 100

// TokenID carries the hex token identifier of an NFT
type TokenID struct {
	TokenID string `json:"tokenId"`
}

// Media is one media rendition attached to an NFT
type Media struct {
	Gateway   string `json:"gateway"`
	Thumbnail string `json:"thumbnail"`
	Raw       string `json:"raw"`
}

// CollectionNFT is one NFT in a getNFTsForCollection page
type CollectionNFT struct {
	ID       TokenID         `json:"id"`
	Title    string          `json:"title"`
	Metadata json.RawMessage `json:"metadata"`
	Media    []Media         `json:"media"`
}

// Metadata is the parsed form of CollectionNFT.Metadata
type Metadata struct {
	Name       string      `json:"name"`
	Image      string      `json:"image"`
	Attributes []Attribute `json:"attributes"`
}

// Attribute is one metadata trait. Value can be a string or a number
// depending on the collection, so it is kept loose here.
type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// CollectionNFTsResponse is one page of a collection's NFTs
type CollectionNFTsResponse struct {
	NFTs      []CollectionNFT `json:"nfts"`
	NextToken string          `json:"nextToken"`
	Error     string          `json:"error,omitempty"`
}

// FloorPriceMarketplace is one marketplace entry of a getFloorPrice response
type FloorPriceMarketplace struct {
	FloorPrice    float64 `json:"floorPrice"`
	PriceCurrency string  `json:"priceCurrency"`
	Error         string  `json:"error,omitempty"`
}

// FloorPriceResponse is the getFloorPrice response
type FloorPriceResponse struct {
	OpenSea   FloorPriceMarketplace `json:"openSea"`
	LooksRare FloorPriceMarketplace `json:"looksRare"`
}

// CollectionOwnersResponse is the getOwnersForCollection response
type CollectionOwnersResponse struct {
	OwnerAddresses []string `json:"ownerAddresses"`
}

// AssetTransfer is one transfer in an alchemy_getAssetTransfers result
type AssetTransfer struct {
	BlockNum        string               `json:"blockNum"`
	Hash            string               `json:"hash"`
	From            string               `json:"from"`
	To              string               `json:"to"`
	Value           float64              `json:"value"`
	TokenID         string               `json:"tokenId"`
	ERC721TokenID   string               `json:"erc721TokenId"`
	ERC1155Metadata []ERC1155TokenAmount `json:"erc1155Metadata"`
	RawContract     RawContract          `json:"rawContract"`
	Category        string               `json:"category"`
	Metadata        TransferMetadata     `json:"metadata"`
}

// ERC1155TokenAmount is one (tokenId, value) pair of an ERC-1155 transfer
type ERC1155TokenAmount struct {
	TokenID string `json:"tokenId"`
	Value   string `json:"value"`
}

// RawContract identifies the contract of a transfer
type RawContract struct {
	Address string `json:"address"`
}

// TransferMetadata carries the block timestamp of a transfer
type TransferMetadata struct {
	BlockTimestamp string `json:"blockTimestamp"`
}

// AssetTransfersResult is the result member of an alchemy_getAssetTransfers response
type AssetTransfersResult struct {
	Transfers []AssetTransfer `json:"transfers"`
	PageKey   string          `json:"pageKey"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type assetTransfersResponse struct {
	Result *AssetTransfersResult `json:"result"`
	Error  *rpcError             `json:"error"`
}

type blockNumberResponse struct {
	Result string    `json:"result"`
	Error  *rpcError `json:"error"`
}

// TransferDirection selects which side of a wallet's transfers to fetch
type TransferDirection string

const (
	TransferDirectionReceived TransferDirection = "received"
	TransferDirectionSent     TransferDirection = "sent"
)

// AssetTransfersParams are the inputs of GetAssetTransfers. Exactly one of
// WalletAddress+Direction or ContractAddresses should be set.
type AssetTransfersParams struct {
	FromBlock         int64
	WalletAddress     string
	Direction         TransferDirection
	ContractAddresses []string
	PageKey           string
}

// Client defines the interface for Alchemy client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/alchemy_client.go -package=mocks -mock_names=Client=MockAlchemyClient
type Client interface {
	// GetNFTsForCollection fetches one page of a collection's NFTs with metadata
	GetNFTsForCollection(ctx context.Context, contractAddress, startToken string) (*CollectionNFTsResponse, error)

	// GetFloorPrice fetches the per-marketplace floor price of a collection
	GetFloorPrice(ctx context.Context, contractAddress string) (*FloorPriceResponse, error)

	// GetOwnersForCollection fetches all owner addresses of a collection
	GetOwnersForCollection(ctx context.Context, contractAddress string) ([]string, error)

	// GetAssetTransfers fetches one page of ERC-721/ERC-1155 transfers via JSON-RPC
	GetAssetTransfers(ctx context.Context, params AssetTransfersParams) (*AssetTransfersResult, error)

	// GetLatestBlockNumber fetches the current chain head block number
	GetLatestBlockNumber(ctx context.Context) (int64, error)

	// AddWebhookAddress registers a wallet with the address activity webhook
	AddWebhookAddress(ctx context.Context, walletAddress string) error
}

// AlchemyClient implements the Alchemy NFT API and JSON-RPC client
type AlchemyClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	nftURL         string
	rpcURL         string
	dashboardURL   string
	apiKey         string
	authToken      string
	webhookID      string
	json           adapter.JSON
}

// NewClient creates a new Alchemy client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, nftURL, rpcURL, dashboardURL, apiKey, authToken, webhookID string, json adapter.JSON) Client {
	return &AlchemyClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		nftURL:         nftURL,
		rpcURL:         rpcURL,
		dashboardURL:   dashboardURL,
		apiKey:         apiKey,
		authToken:      authToken,
		webhookID:      webhookID,
		json:           json,
	}
}

// GetNFTsForCollection fetches one page of a collection's NFTs with metadata
func (c *AlchemyClient) GetNFTsForCollection(ctx context.Context, contractAddress, startToken string) (*CollectionNFTsResponse, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	q := url.Values{}
	q.Set("contractAddress", strings.ToLower(contractAddress))
	q.Set("withMetadata", "true")
	q.Set("limit", fmt.Sprintf("%d", collectionPageSize))
	q.Set("tokenUriTimeoutInMs", "0")
	if startToken != "" {
		q.Set("startToken", startToken)
	}

	reqURL := fmt.Sprintf("%s/nft/v2/%s/getNFTsForCollection?%s", c.nftURL, c.apiKey, q.Encode())
	headers := map[string]string{"Accept": "application/json"}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME_NFT, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, headers)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Alchemy getNFTsForCollection: %w", err)
	}

	var response CollectionNFTsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	if response.Error != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedPayload, response.Error)
	}

	return &response, nil
}

// GetFloorPrice fetches the per-marketplace floor price of a collection.
// The call fails only when every marketplace entry carries an error.
func (c *AlchemyClient) GetFloorPrice(ctx context.Context, contractAddress string) (*FloorPriceResponse, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	reqURL := fmt.Sprintf("%s/nft/v2/%s/getFloorPrice?contractAddress=%s",
		c.nftURL, c.apiKey, strings.ToLower(contractAddress))

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME_NFT, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Alchemy getFloorPrice: %w", err)
	}

	var response FloorPriceResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	if response.OpenSea.Error != "" && response.LooksRare.Error != "" {
		return nil, fmt.Errorf("%w: no marketplace floor price for %s", domain.ErrMalformedPayload, contractAddress)
	}

	return &response, nil
}

// GetOwnersForCollection fetches all owner addresses of a collection
func (c *AlchemyClient) GetOwnersForCollection(ctx context.Context, contractAddress string) ([]string, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	reqURL := fmt.Sprintf("%s/nft/v2/%s/getOwnersForCollection?contractAddress=%s&withTokenBalances=false",
		c.nftURL, c.apiKey, strings.ToLower(contractAddress))
	headers := map[string]string{"Accept": "application/json"}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME_NFT, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, reqURL, headers)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Alchemy getOwnersForCollection: %w", err)
	}

	var response CollectionOwnersResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	return response.OwnerAddresses, nil
}

// GetAssetTransfers fetches one page of ERC-721/ERC-1155 transfers via JSON-RPC
func (c *AlchemyClient) GetAssetTransfers(ctx context.Context, params AssetTransfersParams) (*AssetTransfersResult, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	rpcParams := map[string]interface{}{
		"fromBlock":    fmt.Sprintf("0x%x", params.FromBlock),
		"toBlock":      "latest",
		"category":     []string{"erc721", "erc1155"},
		"withMetadata": true,
		"maxCount":     "0x3e8",
	}

	switch {
	case params.WalletAddress != "":
		if params.Direction == TransferDirectionSent {
			rpcParams["fromAddress"] = params.WalletAddress
		} else {
			rpcParams["toAddress"] = params.WalletAddress
		}
	case len(params.ContractAddresses) > 0:
		rpcParams["contractAddresses"] = params.ContractAddresses
	}

	if params.PageKey != "" {
		rpcParams["pageKey"] = params.PageKey
	}

	var response assetTransfersResponse
	if err := c.rpcCall(ctx, "alchemy_getAssetTransfers", []interface{}{rpcParams}, &response); err != nil {
		return nil, err
	}

	if response.Error != nil {
		return nil, fmt.Errorf("%w: code %d: %s", domain.ErrMalformedPayload, response.Error.Code, response.Error.Message)
	}
	if response.Result == nil {
		return nil, fmt.Errorf("%w: missing result", domain.ErrMalformedPayload)
	}

	return response.Result, nil
}

// GetLatestBlockNumber fetches the current chain head block number
func (c *AlchemyClient) GetLatestBlockNumber(ctx context.Context) (int64, error) {
	if c.apiKey == "" {
		return 0, ErrNoAPIKey
	}

	var response blockNumberResponse
	if err := c.rpcCall(ctx, "eth_blockNumber", []interface{}{}, &response); err != nil {
		return 0, err
	}

	if response.Error != nil {
		return 0, fmt.Errorf("%w: code %d: %s", domain.ErrMalformedPayload, response.Error.Code, response.Error.Message)
	}

	blockNumber, err := strconv.ParseInt(strings.TrimPrefix(response.Result, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid block number %q", domain.ErrMalformedPayload, response.Result)
	}

	return blockNumber, nil
}

// AddWebhookAddress registers a wallet with the address activity webhook.
// The provider treats re-adding a known address as a no-op.
func (c *AlchemyClient) AddWebhookAddress(ctx context.Context, walletAddress string) error {
	if c.authToken == "" {
		return ErrNoAPIKey
	}

	payload := map[string]interface{}{
		"webhook_id":          c.webhookID,
		"addresses_to_add":    []string{walletAddress},
		"addresses_to_remove": []string{},
	}
	body, err := c.json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	headers := map[string]string{
		"X-Alchemy-Token": c.authToken,
		"Accept":          "application/json",
	}

	reqURL := fmt.Sprintf("%s/update-webhook-addresses", c.dashboardURL)
	_, err = ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME_NFT, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.Patch(ctx, reqURL, headers, strings.NewReader(string(body)))
	})
	if err != nil {
		return fmt.Errorf("failed to update webhook addresses: %w", err)
	}

	return nil
}

// rpcCall performs a rate-limited JSON-RPC call against the core endpoint
func (c *AlchemyClient) rpcCall(ctx context.Context, method string, params []interface{}, result interface{}) error {
	payload := map[string]interface{}{
		"id":      1,
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
	}
	body, err := c.json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal rpc payload: %w", err)
	}

	headers := map[string]string{"Accept": "application/json"}
	reqURL := fmt.Sprintf("%s/v2/%s", c.rpcURL, c.apiKey)

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME_RPC, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.Post(ctx, reqURL, headers, strings.NewReader(string(body)))
	})
	if err != nil {
		return fmt.Errorf("failed to call Alchemy %s: %w", method, err)
	}

	if err := c.json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}

	return nil
}
