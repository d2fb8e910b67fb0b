package alchemy_test

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/domain"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
	"github.com/ryft-xyz/ryft-indexer/internal/mocks"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/alchemy"
)

const (
	// Matches the configured default, the client appends the API path itself
	testNFTURL       = "https://eth-mainnet.g.alchemy.com"
	testRPCURL       = "https://eth-mainnet.g.alchemy.com"
	testDashboardURL = "https://dashboard.alchemyapi.io/api"
	testAPIKey       = "test-api-key"
	testAuthToken    = "test-auth-token"
	testWebhookID    = "wh_test"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func newTestClient(ctrl *gomock.Controller) (alchemy.Client, *mocks.MockHTTPClient, *mocks.MockRateLimitProxy) {
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	mockRateLimitProxy := mocks.NewMockRateLimitProxy(ctrl)
	client := alchemy.NewClient(
		mockHTTPClient, mockRateLimitProxy,
		testNFTURL, testRPCURL, testDashboardURL,
		testAPIKey, testAuthToken, testWebhookID,
		adapter.NewJSON(),
	)
	return client, mockHTTPClient, mockRateLimitProxy
}

func passthroughRequest(proxy *mocks.MockRateLimitProxy, providerName string) {
	proxy.EXPECT().
		Request(gomock.Any(), providerName, gomock.Any()).
		DoAndReturn(func(ctx context.Context, providerName string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
			return fn(ctx)
		})
}

func TestClient_GetNFTsForCollection_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	body := `{
		"nfts": [
			{
				"id": {"tokenId": "0x01"},
				"title": "Token 1",
				"metadata": {"attributes": [{"trait_type": "Hat", "value": "Red"}]},
				"media": [{"thumbnail": "https://cdn.example/1.png", "gateway": "https://ipfs.example/1"}]
			}
		],
		"nextToken": "0x64"
	}`

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_NFT)
	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), map[string]string{"Accept": "application/json"}).
		DoAndReturn(func(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
			assert.Contains(t, url, "/nft/v2/"+testAPIKey+"/getNFTsForCollection")
			assert.Contains(t, url, "contractAddress=0xabc0000000000000000000000000000000000000")
			assert.Contains(t, url, "withMetadata=true")
			return []byte(body), nil
		}).
		Times(1)

	resp, err := client.GetNFTsForCollection(ctx, "0xABC0000000000000000000000000000000000000", "")

	require.NoError(t, err)
	require.Len(t, resp.NFTs, 1)
	assert.Equal(t, "0x01", resp.NFTs[0].ID.TokenID)
	assert.Equal(t, "0x64", resp.NextToken)
	assert.Equal(t, "https://cdn.example/1.png", resp.NFTs[0].Media[0].Thumbnail)
}

func TestClient_GetNFTsForCollection_ComposedURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_NFT)
	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
			// The base URL is a bare host, the client owns the API path.
			// A base URL that already carried the path would double it.
			assert.True(t, strings.HasPrefix(url, testNFTURL+"/nft/v2/"+testAPIKey+"/getNFTsForCollection?"))
			assert.Equal(t, 1, strings.Count(url, "/nft/v2/"))
			return []byte(`{"nfts": [], "nextToken": ""}`), nil
		}).
		Times(1)

	_, err := client.GetNFTsForCollection(ctx, "0xabc0000000000000000000000000000000000000", "")
	require.NoError(t, err)
}

func TestClient_GetNFTsForCollection_StartTokenForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_NFT)
	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
			assert.Contains(t, url, "startToken=0x64")
			return []byte(`{"nfts": [], "nextToken": ""}`), nil
		}).
		Times(1)

	resp, err := client.GetNFTsForCollection(ctx, "0xabc0000000000000000000000000000000000000", "0x64")

	require.NoError(t, err)
	assert.Empty(t, resp.NFTs)
}

func TestClient_GetNFTsForCollection_EmbeddedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_NFT)
	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any()).
		Return([]byte(`{"error": "contract does not support this interface"}`), nil).
		Times(1)

	resp, err := client.GetNFTsForCollection(ctx, "0xabc0000000000000000000000000000000000000", "")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestClient_GetNFTsForCollection_NoAPIKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := alchemy.NewClient(mockHTTPClient, nil, testNFTURL, testRPCURL, testDashboardURL, "", "", "", adapter.NewJSON())

	resp, err := client.GetNFTsForCollection(context.Background(), "0xabc0000000000000000000000000000000000000", "")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, alchemy.ErrNoAPIKey)
}

func TestClient_GetFloorPrice_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	body := `{
		"openSea": {"floorPrice": 1.25, "priceCurrency": "ETH"},
		"looksRare": {"error": "unable to fetch floor price"}
	}`

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_NFT)
	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any()).
		Return([]byte(body), nil).
		Times(1)

	resp, err := client.GetFloorPrice(ctx, "0xabc0000000000000000000000000000000000000")

	require.NoError(t, err)
	assert.Equal(t, 1.25, resp.OpenSea.FloorPrice)
	assert.NotEmpty(t, resp.LooksRare.Error)
}

func TestClient_GetFloorPrice_AllMarketplacesFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	body := `{
		"openSea": {"error": "unable to fetch floor price"},
		"looksRare": {"error": "unable to fetch floor price"}
	}`

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_NFT)
	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any()).
		Return([]byte(body), nil).
		Times(1)

	resp, err := client.GetFloorPrice(ctx, "0xabc0000000000000000000000000000000000000")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestClient_GetOwnersForCollection_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_NFT)
	mockHTTPClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any()).
		Return([]byte(`{"ownerAddresses": ["0xaaa", "0xbbb"]}`), nil).
		Times(1)

	owners, err := client.GetOwnersForCollection(ctx, "0xabc0000000000000000000000000000000000000")

	require.NoError(t, err)
	assert.Equal(t, []string{"0xaaa", "0xbbb"}, owners)
}

func TestClient_GetAssetTransfers_WalletReceived(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	body := `{
		"result": {
			"transfers": [
				{
					"blockNum": "0xf4240",
					"hash": "0xhash1",
					"from": "0x0000000000000000000000000000000000000000",
					"to": "0xwallet",
					"erc721TokenId": "0x07",
					"rawContract": {"address": "0xcontract"},
					"category": "erc721",
					"metadata": {"blockTimestamp": "2022-08-01T12:00:00.000Z"}
				}
			],
			"pageKey": "next-page"
		}
	}`

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_RPC)
	mockHTTPClient.EXPECT().
		Post(ctx, testRPCURL+"/v2/"+testAPIKey, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, headers map[string]string, reqBody io.Reader) ([]byte, error) {
			raw, err := io.ReadAll(reqBody)
			require.NoError(t, err)
			assert.Contains(t, string(raw), `"alchemy_getAssetTransfers"`)
			assert.Contains(t, string(raw), `"toAddress":"0xwallet"`)
			assert.Contains(t, string(raw), `"fromBlock":"0xf0000"`)
			return []byte(body), nil
		}).
		Times(1)

	result, err := client.GetAssetTransfers(ctx, alchemy.AssetTransfersParams{
		FromBlock:     0xf0000,
		WalletAddress: "0xwallet",
		Direction:     alchemy.TransferDirectionReceived,
	})

	require.NoError(t, err)
	require.Len(t, result.Transfers, 1)
	assert.Equal(t, "0x07", result.Transfers[0].ERC721TokenID)
	assert.Equal(t, "next-page", result.PageKey)
}

func TestClient_GetAssetTransfers_RPCError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_RPC)
	mockHTTPClient.EXPECT().
		Post(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"error": {"code": -32000, "message": "invalid params"}}`), nil).
		Times(1)

	result, err := client.GetAssetTransfers(ctx, alchemy.AssetTransfersParams{
		WalletAddress: "0xwallet",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestClient_GetAssetTransfers_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	expectedErr := errors.New("network error")

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_RPC)
	mockHTTPClient.EXPECT().
		Post(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, expectedErr).
		Times(1)

	result, err := client.GetAssetTransfers(ctx, alchemy.AssetTransfersParams{
		WalletAddress: "0xwallet",
	})

	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "network error")
}

func TestClient_GetLatestBlockNumber_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_RPC)
	mockHTTPClient.EXPECT().
		Post(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(`{"result": "0xf4240"}`), nil).
		Times(1)

	blockNumber, err := client.GetLatestBlockNumber(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(1000000), blockNumber)
}

func TestClient_AddWebhookAddress_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, mockHTTPClient, mockRateLimitProxy := newTestClient(ctrl)
	ctx := context.Background()

	passthroughRequest(mockRateLimitProxy, alchemy.PROVIDER_NAME_NFT)
	mockHTTPClient.EXPECT().
		Patch(ctx, testDashboardURL+"/update-webhook-addresses", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, url string, headers map[string]string, reqBody io.Reader) ([]byte, error) {
			assert.Equal(t, testAuthToken, headers["X-Alchemy-Token"])
			raw, err := io.ReadAll(reqBody)
			require.NoError(t, err)
			assert.Contains(t, string(raw), `"webhook_id":"wh_test"`)
			assert.Contains(t, string(raw), `"0xwallet"`)
			return []byte(`{}`), nil
		}).
		Times(1)

	err := client.AddWebhookAddress(ctx, "0xwallet")

	require.NoError(t, err)
}
