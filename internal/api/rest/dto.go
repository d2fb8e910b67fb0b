package rest

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/ryft-xyz/ryft-indexer/internal/domain"
	"github.com/ryft-xyz/ryft-indexer/internal/store/schema"
)

// CreateCollectionRequest is the request body for registering a collection
type CreateCollectionRequest struct {
	ContractAddress string `json:"contract_address"`
	Name            string `json:"name,omitempty"`
}

// Validate validates the request body
func (r *CreateCollectionRequest) Validate() error {
	if r.ContractAddress == "" {
		return errors.New("contract_address is required")
	}
	_, err := domain.NormalizeAddress(r.ContractAddress)
	return err
}

// OnboardWalletRequest is the request body for onboarding a wallet
type OnboardWalletRequest struct {
	Address string `json:"address"`
	// Tracked selects the lightweight watch-only onboarding chain
	Tracked bool `json:"tracked,omitempty"`
}

// Validate validates the request body
func (r *OnboardWalletRequest) Validate() error {
	if r.Address == "" {
		return errors.New("address is required")
	}
	_, err := domain.NormalizeAddress(r.Address)
	return err
}

// TrackWalletRequest is the request body for watching a wallet
type TrackWalletRequest struct {
	UserID string `json:"user_id"`
	// Name is an optional user-chosen label for the wallet
	Name string `json:"name,omitempty"`
}

// Validate validates the request body
func (r *TrackWalletRequest) Validate() error {
	if r.UserID == "" {
		return errors.New("user_id is required")
	}
	return nil
}

// TrackWalletResponse carries the tracked wallet row and, for wallets not
// yet indexed, the enqueued onboarding run
type TrackWalletResponse struct {
	TrackedWalletID int64  `json:"tracked_wallet_id"`
	WorkflowID      string `json:"workflow_id,omitempty"`
	RunID           string `json:"run_id,omitempty"`
}

// WorkflowTriggerResponse carries the identity of an enqueued workflow run
type WorkflowTriggerResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// CollectionMetricsResponse is the market statistics section of a collection
type CollectionMetricsResponse struct {
	FloorPrice         float64         `json:"floor_price"`
	OneDayAveragePrice float64         `json:"one_day_average_price"`
	OneDaySales        int64           `json:"one_day_sales"`
	OneDayVolume       float64         `json:"one_day_volume"`
	OwnerCount         int64           `json:"owner_count"`
	PriceHistory       json.RawMessage `json:"price_history,omitempty"`
	OwnersHistory      json.RawMessage `json:"owners_history,omitempty"`
	LastFetched        time.Time       `json:"last_fetched"`
}

// CollectionResponse is the API representation of a collection
type CollectionResponse struct {
	ContractAddress string                     `json:"contract_address"`
	Name            string                     `json:"name,omitempty"`
	Description     string                     `json:"description,omitempty"`
	Thumbnail       string                     `json:"thumbnail,omitempty"`
	Supply          int64                      `json:"supply"`
	Released        bool                       `json:"released"`
	Verified        bool                       `json:"verified"`
	Metrics         *CollectionMetricsResponse `json:"metrics,omitempty"`
}

// NFTResponse is the API representation of one token
type NFTResponse struct {
	TokenID     string  `json:"token_id"`
	Name        string  `json:"name,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	TraitCount  int     `json:"trait_count"`
	RarityScore float64 `json:"rarity_score"`
	Rank        int     `json:"rank"`
}

// NFTListResponse is one page of a collection's tokens ordered by rank
type NFTListResponse struct {
	NFTs   []NFTResponse `json:"nfts"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// AttributeResponse is one trait value of a collection
type AttributeResponse struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Occurrences int    `json:"occurrences"`
}

// AttributeListResponse is a collection's full trait table
type AttributeListResponse struct {
	Attributes []AttributeResponse `json:"attributes"`
}

// TrendingResponse is the latest trending snapshot
type TrendingResponse struct {
	ByVolume  json.RawMessage `json:"by_volume"`
	BySales   json.RawMessage `json:"by_sales"`
	ByPrice   json.RawMessage `json:"by_price"`
	CreatedAt time.Time       `json:"created_at"`
}

// WalletHoldingResponse is one holding of a wallet
type WalletHoldingResponse struct {
	ContractAddress string `json:"contract_address"`
	TokenID         string `json:"token_id"`
}

// WalletResponse is the API representation of a wallet
type WalletResponse struct {
	Address    string                  `json:"address"`
	ENSDomain  string                  `json:"ens_domain,omitempty"`
	ENSDomains json.RawMessage         `json:"ens_domains,omitempty"`
	IsMember   bool                    `json:"is_member"`
	Processed  bool                    `json:"processed"`
	Thumbnail  string                  `json:"thumbnail,omitempty"`
	Holdings   []WalletHoldingResponse `json:"holdings"`
}

// toCollectionResponse maps a collection row and its optional metrics row
func toCollectionResponse(collection *schema.Collection, metric *schema.CollectionMetric) *CollectionResponse {
	response := &CollectionResponse{
		ContractAddress: collection.ContractAddress,
		Name:            collection.Name,
		Description:     collection.Description,
		Thumbnail:       collection.Thumbnail,
		Supply:          collection.Supply,
		Released:        collection.Released,
		Verified:        collection.Verified,
	}

	if metric != nil {
		response.Metrics = &CollectionMetricsResponse{
			FloorPrice:         metric.FloorPrice,
			OneDayAveragePrice: metric.OneDayAveragePrice,
			OneDaySales:        metric.OneDaySales,
			OneDayVolume:       metric.OneDayVolume,
			OwnerCount:         metric.OwnerCount,
			PriceHistory:       json.RawMessage(metric.PriceHistory),
			OwnersHistory:      json.RawMessage(metric.OwnersHistory),
			LastFetched:        metric.LastFetched,
		}
	}

	return response
}

// toAttributeListResponse maps a collection's attribute rows
func toAttributeListResponse(attributes []*schema.CollectionAttribute) *AttributeListResponse {
	response := &AttributeListResponse{
		Attributes: make([]AttributeResponse, 0, len(attributes)),
	}
	for _, attribute := range attributes {
		response.Attributes = append(response.Attributes, AttributeResponse{
			Name:        attribute.Name,
			Value:       attribute.Value,
			Occurrences: attribute.Occurrences,
		})
	}
	return response
}

// toNFTListResponse maps a page of token rows
func toNFTListResponse(nfts []*schema.NFT, limit, offset int) *NFTListResponse {
	response := &NFTListResponse{
		NFTs:   make([]NFTResponse, 0, len(nfts)),
		Limit:  limit,
		Offset: offset,
	}
	for _, nft := range nfts {
		response.NFTs = append(response.NFTs, NFTResponse{
			TokenID:     nft.TokenID,
			Name:        nft.Name,
			ImageURL:    nft.ImageURL,
			TraitCount:  nft.TraitCount,
			RarityScore: nft.RarityScore,
			Rank:        nft.Rank,
		})
	}
	return response
}

// toWalletResponse maps a wallet row and its holdings
func toWalletResponse(wallet *schema.Wallet, holdings []*schema.WalletNFT) *WalletResponse {
	response := &WalletResponse{
		Address:    wallet.Address,
		ENSDomain:  wallet.ENSDomain,
		ENSDomains: json.RawMessage(wallet.ENSDomains),
		IsMember:   wallet.IsMember,
		Processed:  wallet.Processed,
		Thumbnail:  wallet.Thumbnail,
		Holdings:   make([]WalletHoldingResponse, 0, len(holdings)),
	}
	for _, holding := range holdings {
		response.Holdings = append(response.Holdings, WalletHoldingResponse{
			ContractAddress: holding.ContractAddress,
			TokenID:         holding.TokenID,
		})
	}
	return response
}
