package store

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/ryft-xyz/ryft-indexer/internal/store/schema"
)

// InitDBFunc creates a fresh store for one test
type InitDBFunc func(t *testing.T) Store

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestCollection(contract string) *schema.Collection {
	return &schema.Collection{
		ContractAddress: contract,
		Name:            "Test Collection",
		Supply:          100,
		Released:        true,
	}
}

func buildTestNFTs(collectionID int64, n int) []schema.NFT {
	nfts := make([]schema.NFT, n)
	for i := range n {
		nfts[i] = schema.NFT{
			CollectionID: collectionID,
			TokenID:      strconv.Itoa(i),
			Name:         "Token " + strconv.Itoa(i),
			TraitCount:   2,
		}
	}
	return nfts
}

func seedCollection(t *testing.T, s Store, contract string) *schema.Collection {
	collection := buildTestCollection(contract)
	require.NoError(t, s.CreateCollection(context.Background(), collection))
	require.NotZero(t, collection.ID)
	return collection
}

func seedWallet(t *testing.T, s Store, address string) *schema.Wallet {
	wallet, err := s.GetOrCreateWallet(context.Background(), address)
	require.NoError(t, err)
	require.NotZero(t, wallet.ID)
	return wallet
}

// =============================================================================
// Suite
// =============================================================================

// RunStoreTests runs the full store contract against an implementation
func RunStoreTests(t *testing.T, initDB InitDBFunc) {
	t.Run("CollectionLifecycle", func(t *testing.T) { testCollectionLifecycle(t, initDB(t)) })
	t.Run("ReplaceCollectionNFTsIsIdempotent", func(t *testing.T) { testReplaceCollectionNFTs(t, initDB(t)) })
	t.Run("UpdateNFTScores", func(t *testing.T) { testUpdateNFTScores(t, initDB(t)) })
	t.Run("ReplaceCollectionAttributes", func(t *testing.T) { testReplaceCollectionAttributes(t, initDB(t)) })
	t.Run("UpsertCollectionMetric", func(t *testing.T) { testUpsertCollectionMetric(t, initDB(t)) })
	t.Run("MetricHistories", func(t *testing.T) { testMetricHistories(t, initDB(t)) })
	t.Run("RelinkTransactions", func(t *testing.T) { testRelinkTransactions(t, initDB(t)) })
	t.Run("RelinkWalletNFTs", func(t *testing.T) { testRelinkWalletNFTs(t, initDB(t)) })
	t.Run("WalletLifecycle", func(t *testing.T) { testWalletLifecycle(t, initDB(t)) })
	t.Run("ReplaceWalletNFTsIsIdempotent", func(t *testing.T) { testReplaceWalletNFTs(t, initDB(t)) })
	t.Run("WalletNFTCreateIgnoreAndDelete", func(t *testing.T) { testWalletNFTCreateIgnore(t, initDB(t)) })
	t.Run("TransactionIdempotence", func(t *testing.T) { testTransactionIdempotence(t, initDB(t)) })
	t.Run("TrackedWallets", func(t *testing.T) { testTrackedWallets(t, initDB(t)) })
	t.Run("EthBlockCheckpoint", func(t *testing.T) { testEthBlockCheckpoint(t, initDB(t)) })
	t.Run("EthPriceLookup", func(t *testing.T) { testEthPriceLookup(t, initDB(t)) })
	t.Run("TrendingSnapshots", func(t *testing.T) { testTrendingSnapshots(t, initDB(t)) })
	t.Run("PortfolioAndAudit", func(t *testing.T) { testPortfolioAndAudit(t, initDB(t)) })
}

func testCollectionLifecycle(t *testing.T, s Store) {
	ctx := context.Background()

	// Missing rows come back as nil, not error
	missing, err := s.GetCollectionByAddress(ctx, "0xmissing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	collection := seedCollection(t, s, "0xabc")

	got, err := s.GetCollectionByAddress(ctx, "0xabc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, collection.ID, got.ID)
	assert.False(t, got.NFTPortUnsupported)

	byID, err := s.GetCollectionByID(ctx, collection.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)

	// Only released, non-dead collections are listed
	dead := buildTestCollection("0xdead")
	dead.Dead = true
	require.NoError(t, s.CreateCollection(ctx, dead))
	unreleased := buildTestCollection("0xunreleased")
	unreleased.Released = false
	require.NoError(t, s.CreateCollection(ctx, unreleased))

	released, err := s.ListReleasedCollections(ctx)
	require.NoError(t, err)
	require.Len(t, released, 1)
	assert.Equal(t, collection.ID, released[0].ID)

	require.NoError(t, s.SetCollectionNFTPortUnsupported(ctx, collection.ID))
	require.NoError(t, s.UpdateCollectionSupply(ctx, collection.ID, 5000))

	got, err = s.GetCollectionByID(ctx, collection.ID)
	require.NoError(t, err)
	assert.True(t, got.NFTPortUnsupported)
	assert.EqualValues(t, 5000, got.Supply)
}

func testReplaceCollectionNFTs(t *testing.T, s Store) {
	ctx := context.Background()
	collection := seedCollection(t, s, "0xabc")

	require.NoError(t, s.ReplaceCollectionNFTs(ctx, collection.ID, buildTestNFTs(collection.ID, 5)))

	// Re-running the replace leaves exactly one copy of each row
	require.NoError(t, s.ReplaceCollectionNFTs(ctx, collection.ID, buildTestNFTs(collection.ID, 5)))

	nfts, err := s.GetCollectionNFTs(ctx, collection.ID, 100, 0)
	require.NoError(t, err)
	assert.Len(t, nfts, 5)

	// Replacing with a smaller set removes the rest
	require.NoError(t, s.ReplaceCollectionNFTs(ctx, collection.ID, buildTestNFTs(collection.ID, 2)))
	nfts, err = s.GetCollectionNFTs(ctx, collection.ID, 100, 0)
	require.NoError(t, err)
	assert.Len(t, nfts, 2)
}

func testUpdateNFTScores(t *testing.T, s Store) {
	ctx := context.Background()
	collection := seedCollection(t, s, "0xabc")
	require.NoError(t, s.ReplaceCollectionNFTs(ctx, collection.ID, buildTestNFTs(collection.ID, 3)))

	scores := []NFTScore{
		{TokenID: "0", RarityScore: 10.5, Rank: 2},
		{TokenID: "1", RarityScore: 20.0, Rank: 1},
		{TokenID: "2", RarityScore: 5.0, Rank: 3},
	}
	require.NoError(t, s.UpdateNFTScores(ctx, collection.ID, scores))

	nft, err := s.GetNFTByToken(ctx, collection.ID, "1")
	require.NoError(t, err)
	require.NotNil(t, nft)
	assert.Equal(t, 20.0, nft.RarityScore)
	assert.Equal(t, 1, nft.Rank)

	// Page ordered by rank
	nfts, err := s.GetCollectionNFTs(ctx, collection.ID, 2, 0)
	require.NoError(t, err)
	require.Len(t, nfts, 2)
	assert.Equal(t, "1", nfts[0].TokenID)
	assert.Equal(t, "0", nfts[1].TokenID)
}

func testReplaceCollectionAttributes(t *testing.T, s Store) {
	ctx := context.Background()
	collection := seedCollection(t, s, "0xabc")

	attributes := []schema.CollectionAttribute{
		{CollectionID: collection.ID, Name: "Background", Value: "Blue", Occurrences: 3},
		{CollectionID: collection.ID, Name: "Trait Count", Value: "2", Occurrences: 5},
	}
	require.NoError(t, s.ReplaceCollectionAttributes(ctx, collection.ID, attributes))

	again := []schema.CollectionAttribute{
		{CollectionID: collection.ID, Name: "Background", Value: "Blue", Occurrences: 3},
		{CollectionID: collection.ID, Name: "Trait Count", Value: "2", Occurrences: 5},
	}
	require.NoError(t, s.ReplaceCollectionAttributes(ctx, collection.ID, again))

	got, err := s.GetCollectionAttributes(ctx, collection.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func testUpsertCollectionMetric(t *testing.T, s Store) {
	ctx := context.Background()
	collection := seedCollection(t, s, "0xabc")

	metric := &schema.CollectionMetric{
		CollectionID: collection.ID,
		FloorPrice:   1.5,
		OneDaySales:  10,
		LastFetched:  time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, s.UpsertCollectionMetric(ctx, metric))

	// Second upsert updates in place
	metric2 := &schema.CollectionMetric{
		CollectionID: collection.ID,
		FloorPrice:   2.0,
		OneDaySales:  12,
		LastFetched:  time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, s.UpsertCollectionMetric(ctx, metric2))

	got, err := s.GetCollectionMetric(ctx, collection.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2.0, got.FloorPrice)
	assert.EqualValues(t, 12, got.OneDaySales)
}

func testMetricHistories(t *testing.T, s Store) {
	ctx := context.Background()
	collection := seedCollection(t, s, "0xabc")

	// History write with no metrics row creates one
	history := datatypes.JSON(`[{"date":"2026-08-01","floor":1.2}]`)
	require.NoError(t, s.SetCollectionPriceHistory(ctx, collection.ID, history))

	owners := datatypes.JSON(`[{"date":"2026-08-01","owners":42}]`)
	require.NoError(t, s.SetCollectionOwnersHistory(ctx, collection.ID, owners))

	got, err := s.GetCollectionMetric(ctx, collection.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, string(history), string(got.PriceHistory))
	assert.JSONEq(t, string(owners), string(got.OwnersHistory))

	// Metric upsert must not clobber histories
	require.NoError(t, s.UpsertCollectionMetric(ctx, &schema.CollectionMetric{
		CollectionID: collection.ID,
		FloorPrice:   3.0,
		UpdatedAt:    time.Now(),
	}))
	got, err = s.GetCollectionMetric(ctx, collection.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(history), string(got.PriceHistory))
}

func testRelinkTransactions(t *testing.T, s Store) {
	ctx := context.Background()
	collection := seedCollection(t, s, "0xabc")
	wallet := seedWallet(t, s, "0xwallet")

	require.NoError(t, s.CreateTransactionIgnore(ctx, &schema.Transaction{
		WalletID:        &wallet.ID,
		TransactionType: "transfer",
		ContractAddress: "0xabc",
		TokenID:         "1",
		TransactionHash: "0xhash1",
	}))

	unlinked, err := s.ListUnlinkedTransactions(ctx, "0xabc", 100)
	require.NoError(t, err)
	require.Len(t, unlinked, 1)

	require.NoError(t, s.ReplaceCollectionNFTs(ctx, collection.ID, buildTestNFTs(collection.ID, 3)))
	nft, err := s.GetNFTByToken(ctx, collection.ID, "1")
	require.NoError(t, err)
	require.NotNil(t, nft)

	require.NoError(t, s.LinkTransactionsToNFT(ctx, nft.ID, []int64{unlinked[0].ID}))

	unlinked, err = s.ListUnlinkedTransactions(ctx, "0xabc", 100)
	require.NoError(t, err)
	assert.Empty(t, unlinked)
}

func testRelinkWalletNFTs(t *testing.T, s Store) {
	ctx := context.Background()
	collection := seedCollection(t, s, "0xabc")
	wallet := seedWallet(t, s, "0xwallet")

	require.NoError(t, s.CreateWalletNFTIgnore(ctx, &schema.WalletNFT{
		WalletID:        wallet.ID,
		ContractAddress: "0xabc",
		TokenID:         "2",
	}))

	unlinked, err := s.ListUnlinkedWalletNFTs(ctx, "0xabc")
	require.NoError(t, err)
	require.Len(t, unlinked, 1)

	require.NoError(t, s.ReplaceCollectionNFTs(ctx, collection.ID, buildTestNFTs(collection.ID, 3)))
	nft, err := s.GetNFTByToken(ctx, collection.ID, "2")
	require.NoError(t, err)
	require.NotNil(t, nft)

	require.NoError(t, s.LinkWalletNFTsToNFT(ctx, nft.ID, []int64{unlinked[0].ID}))

	unlinked, err = s.ListUnlinkedWalletNFTs(ctx, "0xabc")
	require.NoError(t, err)
	assert.Empty(t, unlinked)
}

func testWalletLifecycle(t *testing.T, s Store) {
	ctx := context.Background()

	wallet := seedWallet(t, s, "0xwallet")
	assert.False(t, wallet.Processed)
	assert.True(t, wallet.Active)

	// Get-or-create returns the same row
	again, err := s.GetOrCreateWallet(ctx, "0xwallet")
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, again.ID)

	require.NoError(t, s.SetWalletRawNFTData(ctx, wallet.ID, datatypes.JSON(`[{"contract_address":"0xabc","token_id":"1"}]`)))
	require.NoError(t, s.SetWalletMembership(ctx, wallet.ID, true))
	require.NoError(t, s.SetWalletProcessed(ctx, wallet.ID, "alice.eth", datatypes.JSON(`["alice.eth"]`)))

	got, err := s.GetWalletByAddress(ctx, "0xwallet")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Processed)
	assert.True(t, got.IsMember)
	assert.Equal(t, "alice.eth", got.ENSDomain)

	processed, err := s.ListProcessedWallets(ctx)
	require.NoError(t, err)
	assert.Len(t, processed, 1)
}

func testReplaceWalletNFTs(t *testing.T, s Store) {
	ctx := context.Background()
	wallet := seedWallet(t, s, "0xwallet")

	holdings := []schema.WalletNFT{
		{WalletID: wallet.ID, ContractAddress: "0xabc", TokenID: "1"},
		{WalletID: wallet.ID, ContractAddress: "0xabc", TokenID: "2"},
	}
	require.NoError(t, s.ReplaceWalletNFTs(ctx, wallet.ID, holdings))

	// Re-running onboarding persistence must not duplicate holdings
	holdings = []schema.WalletNFT{
		{WalletID: wallet.ID, ContractAddress: "0xabc", TokenID: "1"},
		{WalletID: wallet.ID, ContractAddress: "0xabc", TokenID: "2"},
	}
	require.NoError(t, s.ReplaceWalletNFTs(ctx, wallet.ID, holdings))

	got, err := s.GetWalletNFTs(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func testWalletNFTCreateIgnore(t *testing.T, s Store) {
	ctx := context.Background()
	wallet := seedWallet(t, s, "0xwallet")

	nft := schema.WalletNFT{WalletID: wallet.ID, ContractAddress: "0xabc", TokenID: "7"}
	require.NoError(t, s.CreateWalletNFTIgnore(ctx, &nft))
	dup := schema.WalletNFT{WalletID: wallet.ID, ContractAddress: "0xabc", TokenID: "7"}
	require.NoError(t, s.CreateWalletNFTIgnore(ctx, &dup))

	got, err := s.GetWalletNFTs(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.NoError(t, s.DeleteWalletNFT(ctx, wallet.ID, "0xabc", "7"))
	got, err = s.GetWalletNFTs(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testTransactionIdempotence(t *testing.T, s Store) {
	ctx := context.Background()
	wallet := seedWallet(t, s, "0xwallet")

	tx := &schema.Transaction{
		WalletID:        &wallet.ID,
		TransactionType: "mint",
		ContractAddress: "0xabc",
		TokenID:         "1",
		TransactionHash: "0xhash",
	}
	require.NoError(t, s.CreateTransactionIgnore(ctx, tx))

	// Webhook redelivery of the same (wallet, hash) is a no-op
	dup := &schema.Transaction{
		WalletID:        &wallet.ID,
		TransactionType: "mint",
		ContractAddress: "0xabc",
		TokenID:         "1",
		TransactionHash: "0xhash",
	}
	require.NoError(t, s.CreateTransactionIgnore(ctx, dup))

	unlinked, err := s.ListUnlinkedTransactions(ctx, "0xabc", 100)
	require.NoError(t, err)
	assert.Len(t, unlinked, 1)

	// Bulk variant also ignores duplicates
	batch := []schema.Transaction{
		{WalletID: &wallet.ID, TransactionType: "transfer", ContractAddress: "0xabc", TokenID: "2", TransactionHash: "0xhash"},
		{WalletID: &wallet.ID, TransactionType: "transfer", ContractAddress: "0xabc", TokenID: "3", TransactionHash: "0xhash2"},
	}
	require.NoError(t, s.CreateTransactionsIgnore(ctx, batch))

	unlinked, err = s.ListUnlinkedTransactions(ctx, "0xabc", 100)
	require.NoError(t, err)
	assert.Len(t, unlinked, 2)
}

func testTrackedWallets(t *testing.T, s Store) {
	ctx := context.Background()

	// Created before the wallet exists
	tracked, err := s.GetOrCreateTrackedWallet(ctx, "0xtracked", nil)
	require.NoError(t, err)
	require.NotZero(t, tracked.ID)
	assert.Nil(t, tracked.WalletID)

	// Wallet link is backfilled on a later call
	wallet := seedWallet(t, s, "0xtracked")
	tracked, err = s.GetOrCreateTrackedWallet(ctx, "0xtracked", &wallet.ID)
	require.NoError(t, err)
	require.NotNil(t, tracked.WalletID)
	assert.Equal(t, wallet.ID, *tracked.WalletID)

	require.NoError(t, s.SetTrackedWalletThumbnail(ctx, "0xtracked", "https://img.example/1.png"))

	require.NoError(t, s.LinkUserTrackedWallet(ctx, "user-1", tracked.ID, "my whale"))
	require.NoError(t, s.LinkUserTrackedWallet(ctx, "user-1", tracked.ID, "renamed"))
}

func testEthBlockCheckpoint(t *testing.T, s Store) {
	ctx := context.Background()

	missing, err := s.GetEthBlock(ctx, "0xabc")
	require.NoError(t, err)
	assert.Nil(t, missing)

	now := time.Now()
	require.NoError(t, s.UpsertEthBlock(ctx, "0xabc", 1000, now))
	require.NoError(t, s.UpsertEthBlock(ctx, "0xabc", 2000, now.Add(time.Hour)))

	block, err := s.GetEthBlock(ctx, "0xabc")
	require.NoError(t, err)
	require.NotNil(t, block)
	assert.EqualValues(t, 2000, block.LastBlock)
}

func testEthPriceLookup(t *testing.T, s Store) {
	ctx := context.Background()

	// No rows yet
	price, err := s.GetEthPriceAt(ctx, time.Now())
	require.NoError(t, err)
	assert.Nil(t, price)

	day := 24 * time.Hour
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateEthPrice(ctx, &schema.EthPrice{Date: base, USD: 3000}))
	require.NoError(t, s.CreateEthPrice(ctx, &schema.EthPrice{Date: base.Add(day), USD: 3100}))
	require.NoError(t, s.CreateEthPrice(ctx, &schema.EthPrice{Date: base.Add(2 * day), USD: 3200}))

	// Most recent row at or before the given time wins
	price, err = s.GetEthPriceAt(ctx, base.Add(day+12*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, 3100.0, price.USD)

	// Exact match
	price, err = s.GetEthPriceAt(ctx, base.Add(2*day))
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, 3200.0, price.USD)

	// Before all rows
	price, err = s.GetEthPriceAt(ctx, base.Add(-day))
	require.NoError(t, err)
	assert.Nil(t, price)
}

func testTrendingSnapshots(t *testing.T, s Store) {
	ctx := context.Background()

	latest, err := s.GetLatestTrendingSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	require.NoError(t, s.CreateTrendingSnapshot(ctx, &schema.TrendingCollection{
		ByVolume:  datatypes.JSON(`[{"contract":"0xold"}]`),
		CreatedAt: time.Now().Add(-time.Hour),
	}))
	require.NoError(t, s.CreateTrendingSnapshot(ctx, &schema.TrendingCollection{
		ByVolume:  datatypes.JSON(`[{"contract":"0xnew"}]`),
		CreatedAt: time.Now(),
	}))

	latest, err = s.GetLatestTrendingSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Contains(t, string(latest.ByVolume), "0xnew")
}

func testPortfolioAndAudit(t *testing.T, s Store) {
	ctx := context.Background()
	wallet := seedWallet(t, s, "0xwallet")

	require.NoError(t, s.CreatePortfolioRecord(ctx, &schema.WalletPortfolioRecord{
		WalletID:       wallet.ID,
		Timestamp:      time.Now(),
		PortfolioValue: 12.5,
	}))

	require.NoError(t, s.RecordAPICall(ctx, "alchemy_nft", "getNFTsForCollection"))
}
