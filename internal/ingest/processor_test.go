package ingest_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/ingest"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
	"github.com/ryft-xyz/ryft-indexer/internal/mocks"
	"github.com/ryft-xyz/ryft-indexer/internal/store/schema"
	"github.com/ryft-xyz/ryft-indexer/internal/webhook"
)

const gatingContract = "0xgating000000000000000000000000000000cafe"

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

func newProcessor(ctrl *gomock.Controller) (ingest.Processor, *mocks.MockStore) {
	mockStore := mocks.NewMockStore(ctrl)
	processor := ingest.NewProcessor(mockStore, gatingContract, adapter.NewJSON())
	return processor, mockStore
}

func payloadWith(activity ...webhook.Activity) *webhook.Payload {
	return &webhook.Payload{
		WebhookID: "wh_1",
		ID:        "whevt_1",
		CreatedAt: time.Date(2022, 8, 3, 23, 29, 11, 0, time.UTC),
		Type:      webhook.ActivityEventType,
		Event:     webhook.Event{Network: "ETH_MAINNET", Activity: activity},
	}
}

func TestProcess_SkipsFungibleTokenActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor, _ := newProcessor(ctrl)

	payload := payloadWith(webhook.Activity{
		FromAddress: "0xsender",
		ToAddress:   "0xrecipient",
		Category:    "token",
		Value:       100,
	})

	err := processor.Process(context.Background(), payload)

	require.NoError(t, err)
}

func TestProcess_MintCreatesHolding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor, mockStore := newProcessor(ctrl)
	ctx := context.Background()

	recipient := "0xbuyer00000000000000000000000000000000001"
	contract := "0xcontract00000000000000000000000000000001"

	payload := payloadWith(webhook.Activity{
		FromAddress:   "0x0000000000000000000000000000000000000000",
		ToAddress:     recipient,
		BlockNum:      "0xe9a323",
		BlockHash:     "0xblockhash00000000000000000000000000000001",
		Hash:          "0xmint",
		Category:      "erc721",
		RawContract:   webhook.RawContract{Address: contract},
		ERC721TokenID: "0x2a",
	})

	mockStore.EXPECT().GetCollectionByAddress(ctx, contract).Return(nil, nil)
	mockStore.EXPECT().GetWalletByAddress(ctx, recipient).Return(&schema.Wallet{ID: 7, Address: recipient}, nil)
	mockStore.EXPECT().
		CreateTransactionIgnore(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, transaction *schema.Transaction) error {
			assert.Equal(t, "mint", transaction.TransactionType)
			assert.Equal(t, "42", transaction.TokenID)
			assert.Equal(t, int64(15311651), transaction.BlockNumber)
			assert.Equal(t, "0xblockhash00000000000000000000000000000001", transaction.BlockHash)
			assert.Equal(t, int64(1), transaction.Quantity)
			require.NotNil(t, transaction.WalletID)
			assert.Equal(t, int64(7), *transaction.WalletID)
			return nil
		})
	mockStore.EXPECT().
		CreateWalletNFTIgnore(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, holding *schema.WalletNFT) error {
			assert.Equal(t, int64(7), holding.WalletID)
			assert.Equal(t, contract, holding.ContractAddress)
			assert.Equal(t, "42", holding.TokenID)
			return nil
		})

	err := processor.Process(ctx, payload)

	require.NoError(t, err)
}

func TestProcess_TransferMovesHoldingBetweenWallets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor, mockStore := newProcessor(ctrl)
	ctx := context.Background()

	sender := "0xseller0000000000000000000000000000000001"
	recipient := "0xbuyer00000000000000000000000000000000001"
	contract := "0xcontract00000000000000000000000000000001"

	payload := payloadWith(webhook.Activity{
		FromAddress:   sender,
		ToAddress:     recipient,
		BlockNum:      "0xe9a324",
		Hash:          "0xtransfer",
		Category:      "erc721",
		RawContract:   webhook.RawContract{Address: contract},
		ERC721TokenID: "0x2a",
	})

	mockStore.EXPECT().GetCollectionByAddress(ctx, contract).Return(nil, nil)

	mockStore.EXPECT().GetWalletByAddress(ctx, sender).Return(&schema.Wallet{ID: 3, Address: sender}, nil)
	mockStore.EXPECT().GetWalletByAddress(ctx, recipient).Return(&schema.Wallet{ID: 7, Address: recipient}, nil)

	mockStore.EXPECT().
		CreateTransactionIgnore(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, transaction *schema.Transaction) error {
			assert.Equal(t, "transfer", transaction.TransactionType)
			return nil
		}).
		Times(2)
	mockStore.EXPECT().DeleteWalletNFT(ctx, int64(3), contract, "42").Return(nil)
	mockStore.EXPECT().
		CreateWalletNFTIgnore(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, holding *schema.WalletNFT) error {
			assert.Equal(t, int64(7), holding.WalletID)
			assert.Equal(t, "42", holding.TokenID)
			return nil
		})

	err := processor.Process(ctx, payload)

	require.NoError(t, err)
}

func TestProcess_GatingContractFlipsMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor, mockStore := newProcessor(ctrl)
	ctx := context.Background()

	sender := "0xseller0000000000000000000000000000000001"
	recipient := "0xbuyer00000000000000000000000000000000001"

	payload := payloadWith(webhook.Activity{
		FromAddress:   sender,
		ToAddress:     recipient,
		BlockNum:      "0xe9a325",
		Hash:          "0xgated",
		Category:      "erc721",
		RawContract:   webhook.RawContract{Address: gatingContract},
		ERC721TokenID: "0x1",
	})

	mockStore.EXPECT().GetCollectionByAddress(ctx, gatingContract).Return(nil, nil)
	mockStore.EXPECT().GetWalletByAddress(ctx, sender).Return(&schema.Wallet{ID: 3, Address: sender}, nil)
	mockStore.EXPECT().GetWalletByAddress(ctx, recipient).Return(&schema.Wallet{ID: 7, Address: recipient}, nil)
	mockStore.EXPECT().CreateTransactionIgnore(ctx, gomock.Any()).Return(nil).Times(2)
	mockStore.EXPECT().DeleteWalletNFT(ctx, int64(3), gatingContract, "1").Return(nil)
	mockStore.EXPECT().CreateWalletNFTIgnore(ctx, gomock.Any()).Return(nil)

	mockStore.EXPECT().SetWalletMembership(ctx, int64(3), false).Return(nil)
	mockStore.EXPECT().SetWalletMembership(ctx, int64(7), true).Return(nil)

	err := processor.Process(ctx, payload)

	require.NoError(t, err)
}

func TestProcess_ERC1155DecodesHexQuantityAndFiatValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor, mockStore := newProcessor(ctrl)
	ctx := context.Background()

	sender := "0xseller0000000000000000000000000000000001"
	recipient := "0xbuyer00000000000000000000000000000000001"
	contract := "0xcontract00000000000000000000000000000001"

	payload := payloadWith(webhook.Activity{
		FromAddress: sender,
		ToAddress:   recipient,
		BlockNum:    "0xe9a326",
		Hash:        "0xbatch",
		Value:       0.5,
		Category:    "erc1155",
		RawContract: webhook.RawContract{Address: contract},
		ERC1155Metadata: []webhook.ERC1155Transfer{
			{TokenID: "0xff", Value: "0x3"},
		},
	})

	mockStore.EXPECT().
		GetEthPriceAt(ctx, payload.CreatedAt).
		Return(&schema.EthPrice{USD: 1600}, nil)
	mockStore.EXPECT().GetCollectionByAddress(ctx, contract).Return(nil, nil)
	mockStore.EXPECT().GetWalletByAddress(ctx, sender).Return(nil, nil)
	mockStore.EXPECT().GetWalletByAddress(ctx, recipient).Return(&schema.Wallet{ID: 7, Address: recipient}, nil)
	mockStore.EXPECT().
		CreateTransactionIgnore(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, transaction *schema.Transaction) error {
			assert.Equal(t, "buy", transaction.TransactionType)
			assert.Equal(t, "255", transaction.TokenID)
			assert.Equal(t, int64(3), transaction.Quantity)
			assert.Equal(t, 0.5, transaction.PriceETH)
			assert.Equal(t, 800.0, transaction.PriceUSD)
			return nil
		})
	mockStore.EXPECT().CreateWalletNFTIgnore(ctx, gomock.Any()).Return(nil)

	err := processor.Process(ctx, payload)

	require.NoError(t, err)
}

func TestProcess_LinksLocallyIndexedNFT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor, mockStore := newProcessor(ctrl)
	ctx := context.Background()

	recipient := "0xbuyer00000000000000000000000000000000001"
	contract := "0xcontract00000000000000000000000000000001"

	payload := payloadWith(webhook.Activity{
		FromAddress:   "0x0000000000000000000000000000000000000000",
		ToAddress:     recipient,
		BlockNum:      "0xe9a327",
		Hash:          "0xlinked",
		Category:      "erc721",
		RawContract:   webhook.RawContract{Address: contract},
		ERC721TokenID: "0x7",
	})

	mockStore.EXPECT().
		GetCollectionByAddress(ctx, contract).
		Return(&schema.Collection{ID: 11, ContractAddress: contract}, nil)
	mockStore.EXPECT().
		GetNFTByToken(ctx, int64(11), "7").
		Return(&schema.NFT{ID: 99, CollectionID: 11, TokenID: "7"}, nil)
	mockStore.EXPECT().GetWalletByAddress(ctx, recipient).Return(&schema.Wallet{ID: 7, Address: recipient}, nil)
	mockStore.EXPECT().
		CreateTransactionIgnore(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, transaction *schema.Transaction) error {
			require.NotNil(t, transaction.NFTID)
			assert.Equal(t, int64(99), *transaction.NFTID)
			return nil
		})
	mockStore.EXPECT().
		CreateWalletNFTIgnore(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, holding *schema.WalletNFT) error {
			require.NotNil(t, holding.NFTID)
			assert.Equal(t, int64(99), *holding.NFTID)
			return nil
		})

	err := processor.Process(ctx, payload)

	require.NoError(t, err)
}

func TestProcess_UndecodableTokenSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	processor, _ := newProcessor(ctrl)

	payload := payloadWith(webhook.Activity{
		FromAddress: "0xsender",
		ToAddress:   "0xrecipient",
		Category:    "erc721",
		RawContract: webhook.RawContract{Address: "0xcontract"},
	})

	err := processor.Process(context.Background(), payload)

	require.NoError(t, err)
}
