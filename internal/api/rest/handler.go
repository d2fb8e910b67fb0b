package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/ryft-xyz/ryft-indexer/internal/adapter"
	"github.com/ryft-xyz/ryft-indexer/internal/domain"
	"github.com/ryft-xyz/ryft-indexer/internal/ingest"
	"github.com/ryft-xyz/ryft-indexer/internal/logger"
	"github.com/ryft-xyz/ryft-indexer/internal/providers/temporal"
	"github.com/ryft-xyz/ryft-indexer/internal/store"
	"github.com/ryft-xyz/ryft-indexer/internal/store/schema"
	"github.com/ryft-xyz/ryft-indexer/internal/webhook"
	"github.com/ryft-xyz/ryft-indexer/internal/workflows"
)

const (
	defaultNFTPageSize = 50
	maxNFTPageSize     = 200

	// rateLimitRetryAfterSeconds is the Retry-After hint returned when a
	// downstream provider rate limit surfaces through a request
	rateLimitRetryAfterSeconds = 5
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// GetCollection retrieves a collection with its market metrics
	// GET /api/v1/collections/:address
	GetCollection(c *gin.Context)

	// ListCollectionNFTs retrieves a page of a collection's tokens ordered by rank
	// GET /api/v1/collections/:address/nfts?limit=<limit>&offset=<offset>
	ListCollectionNFTs(c *gin.Context)

	// ListCollectionAttributes retrieves a collection's trait table
	// GET /api/v1/collections/:address/attributes
	ListCollectionAttributes(c *gin.Context)

	// GetTrending retrieves the latest trending rankings snapshot
	// GET /api/v1/trending
	GetTrending(c *gin.Context)

	// GetWallet retrieves a wallet with its current holdings
	// GET /api/v1/wallets/:address
	GetWallet(c *gin.Context)

	// CreateCollection registers a collection and enqueues its first refresh
	// POST /api/v1/collections
	CreateCollection(c *gin.Context)

	// RefreshCollection enqueues a refresh of an already registered collection
	// POST /api/v1/collections/:address/refresh
	RefreshCollection(c *gin.Context)

	// OnboardWallet enqueues the wallet onboarding chain
	// POST /api/v1/wallets
	OnboardWallet(c *gin.Context)

	// TrackWallet links a user to a watched wallet, onboarding it if unknown
	// POST /api/v1/wallets/:address/track
	TrackWallet(c *gin.Context)

	// IngestWalletActivity verifies and processes an address activity webhook
	// POST /webhooks/wallet-activity
	IngestWalletActivity(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	processor    ingest.Processor
	json         adapter.JSON
	taskQueue    string
	signingKey   string
}

// NewHandler creates a new REST API handler
func NewHandler(
	s store.Store,
	orchestrator temporal.TemporalOrchestrator,
	processor ingest.Processor,
	jsonAdapter adapter.JSON,
	taskQueue string,
	signingKey string,
) Handler {
	return &handler{
		store:        s,
		orchestrator: orchestrator,
		processor:    processor,
		json:         jsonAdapter,
		taskQueue:    taskQueue,
		signingKey:   signingKey,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetCollection retrieves a collection with its market metrics
func (h *handler) GetCollection(c *gin.Context) {
	address, err := domain.NormalizeAddress(c.Param("address"))
	if err != nil {
		respondBadRequest(c, "Invalid contract address")
		return
	}

	collection, err := h.store.GetCollectionByAddress(c.Request.Context(), address)
	if err != nil {
		h.respondStoreError(c, err, "Failed to get collection")
		return
	}
	if collection == nil {
		respondNotFound(c, "Collection not found")
		return
	}

	metric, err := h.store.GetCollectionMetric(c.Request.Context(), collection.ID)
	if err != nil {
		h.respondStoreError(c, err, "Failed to get collection metrics")
		return
	}

	c.JSON(http.StatusOK, toCollectionResponse(collection, metric))
}

// ListCollectionNFTs retrieves a page of a collection's tokens ordered by rank
func (h *handler) ListCollectionNFTs(c *gin.Context) {
	address, err := domain.NormalizeAddress(c.Param("address"))
	if err != nil {
		respondBadRequest(c, "Invalid contract address")
		return
	}

	limit, offset, err := parsePageParams(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	collection, err := h.store.GetCollectionByAddress(c.Request.Context(), address)
	if err != nil {
		h.respondStoreError(c, err, "Failed to get collection")
		return
	}
	if collection == nil {
		respondNotFound(c, "Collection not found")
		return
	}

	nfts, err := h.store.GetCollectionNFTs(c.Request.Context(), collection.ID, limit, offset)
	if err != nil {
		h.respondStoreError(c, err, "Failed to list collection NFTs")
		return
	}

	c.JSON(http.StatusOK, toNFTListResponse(nfts, limit, offset))
}

// ListCollectionAttributes retrieves a collection's trait table
func (h *handler) ListCollectionAttributes(c *gin.Context) {
	address, err := domain.NormalizeAddress(c.Param("address"))
	if err != nil {
		respondBadRequest(c, "Invalid contract address")
		return
	}

	collection, err := h.store.GetCollectionByAddress(c.Request.Context(), address)
	if err != nil {
		h.respondStoreError(c, err, "Failed to get collection")
		return
	}
	if collection == nil {
		respondNotFound(c, "Collection not found")
		return
	}

	attributes, err := h.store.GetCollectionAttributes(c.Request.Context(), collection.ID)
	if err != nil {
		h.respondStoreError(c, err, "Failed to list collection attributes")
		return
	}

	c.JSON(http.StatusOK, toAttributeListResponse(attributes))
}

// GetTrending retrieves the latest trending rankings snapshot
func (h *handler) GetTrending(c *gin.Context) {
	snapshot, err := h.store.GetLatestTrendingSnapshot(c.Request.Context())
	if err != nil {
		h.respondStoreError(c, err, "Failed to get trending snapshot")
		return
	}
	if snapshot == nil {
		respondNotFound(c, "No trending snapshot available")
		return
	}

	c.JSON(http.StatusOK, TrendingResponse{
		ByVolume:  []byte(snapshot.ByVolume),
		BySales:   []byte(snapshot.BySales),
		ByPrice:   []byte(snapshot.ByPrice),
		CreatedAt: snapshot.CreatedAt,
	})
}

// GetWallet retrieves a wallet with its current holdings
func (h *handler) GetWallet(c *gin.Context) {
	address, err := domain.NormalizeAddress(c.Param("address"))
	if err != nil {
		respondBadRequest(c, "Invalid wallet address")
		return
	}

	wallet, err := h.store.GetWalletByAddress(c.Request.Context(), address)
	if err != nil {
		h.respondStoreError(c, err, "Failed to get wallet")
		return
	}
	if wallet == nil {
		respondNotFound(c, "Wallet not found")
		return
	}

	holdings, err := h.store.GetWalletNFTs(c.Request.Context(), wallet.ID)
	if err != nil {
		h.respondStoreError(c, err, "Failed to get wallet holdings")
		return
	}

	c.JSON(http.StatusOK, toWalletResponse(wallet, holdings))
}

// CreateCollection registers a collection and enqueues its first refresh
func (h *handler) CreateCollection(c *gin.Context) {
	var request CreateCollectionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	address, _ := domain.NormalizeAddress(request.ContractAddress)

	collection, err := h.store.GetCollectionByAddress(c.Request.Context(), address)
	if err != nil {
		h.respondStoreError(c, err, "Failed to look up collection")
		return
	}

	status := http.StatusOK
	if collection == nil {
		collection = &schema.Collection{
			ContractAddress:    address,
			Name:               request.Name,
			CommunitySubmitted: true,
		}
		if err := h.store.CreateCollection(c.Request.Context(), collection); err != nil {
			h.respondStoreError(c, err, "Failed to create collection")
			return
		}
		status = http.StatusCreated
	}

	trigger, err := h.enqueueCollectionRefresh(c, collection.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to enqueue collection refresh")
		return
	}

	c.JSON(status, trigger)
}

// RefreshCollection enqueues a refresh of an already registered collection
func (h *handler) RefreshCollection(c *gin.Context) {
	address, err := domain.NormalizeAddress(c.Param("address"))
	if err != nil {
		respondBadRequest(c, "Invalid contract address")
		return
	}

	collection, err := h.store.GetCollectionByAddress(c.Request.Context(), address)
	if err != nil {
		h.respondStoreError(c, err, "Failed to get collection")
		return
	}
	if collection == nil {
		respondNotFound(c, "Collection not found")
		return
	}

	trigger, err := h.enqueueCollectionRefresh(c, collection.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to enqueue collection refresh")
		return
	}

	c.JSON(http.StatusOK, trigger)
}

// OnboardWallet enqueues the wallet onboarding chain
func (h *handler) OnboardWallet(c *gin.Context) {
	var request OnboardWalletRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	address, _ := domain.NormalizeAddress(request.Address)
	mode := domain.OnboardingModeFull
	if request.Tracked {
		mode = domain.OnboardingModeTracked
	}

	w := workflows.NewWorkerCore(nil)
	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("onboard-wallet-%s", address),
		TaskQueue:                h.taskQueue,
		WorkflowExecutionTimeout: time.Hour,
	}
	run, err := h.orchestrator.ExecuteWorkflow(c.Request.Context(), options, w.OnboardWallet,
		domain.WalletOnboardingRequest{Address: address, Mode: mode})
	if err != nil {
		respondServiceError(c, err, "Failed to enqueue wallet onboarding")
		return
	}

	c.JSON(http.StatusOK, WorkflowTriggerResponse{
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	})
}

// TrackWallet links a user to a watched wallet. A wallet that was never
// indexed additionally gets the watch-only onboarding chain enqueued.
func (h *handler) TrackWallet(c *gin.Context) {
	address, err := domain.NormalizeAddress(c.Param("address"))
	if err != nil {
		respondBadRequest(c, "Invalid wallet address")
		return
	}

	var request TrackWalletRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if err := request.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	wallet, err := h.store.GetWalletByAddress(c.Request.Context(), address)
	if err != nil {
		h.respondStoreError(c, err, "Failed to get wallet")
		return
	}

	var walletID *int64
	if wallet != nil {
		walletID = &wallet.ID
	}

	tracked, err := h.store.GetOrCreateTrackedWallet(c.Request.Context(), address, walletID)
	if err != nil {
		h.respondStoreError(c, err, "Failed to track wallet")
		return
	}

	if err := h.store.LinkUserTrackedWallet(c.Request.Context(), request.UserID, tracked.ID, request.Name); err != nil {
		h.respondStoreError(c, err, "Failed to link tracked wallet")
		return
	}

	response := TrackWalletResponse{TrackedWalletID: tracked.ID}

	if wallet == nil {
		w := workflows.NewWorkerCore(nil)
		options := client.StartWorkflowOptions{
			ID:                       fmt.Sprintf("onboard-wallet-%s", address),
			TaskQueue:                h.taskQueue,
			WorkflowExecutionTimeout: time.Hour,
		}
		run, err := h.orchestrator.ExecuteWorkflow(c.Request.Context(), options, w.OnboardWallet,
			domain.WalletOnboardingRequest{Address: address, Mode: domain.OnboardingModeTracked})
		if err != nil {
			respondServiceError(c, err, "Failed to enqueue wallet onboarding")
			return
		}
		response.WorkflowID = run.GetID()
		response.RunID = run.GetRunID()
	}

	c.JSON(http.StatusOK, response)
}

// IngestWalletActivity verifies and processes an address activity webhook.
// A failed signature check rejects the request before any state changes.
func (h *handler) IngestWalletActivity(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondBadRequest(c, "Failed to read request body")
		return
	}

	signature := c.GetHeader(webhook.SignatureHeader)
	if err := webhook.VerifySignature(body, signature, h.signingKey); err != nil {
		logger.Warn("webhook signature verification failed",
			zap.String("client_ip", c.ClientIP()))
		respondInvalidSignature(c)
		return
	}

	var payload webhook.Payload
	if err := h.json.Unmarshal(body, &payload); err != nil {
		respondBadRequest(c, "Invalid webhook payload")
		return
	}

	if payload.Type != webhook.ActivityEventType {
		// Other event types are acknowledged and dropped
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err := h.processor.Process(c.Request.Context(), &payload); err != nil {
		respondInternalError(c, err, "Failed to process webhook payload")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// enqueueCollectionRefresh starts the collection refresh workflow
func (h *handler) enqueueCollectionRefresh(c *gin.Context, collectionID int64) (*WorkflowTriggerResponse, error) {
	w := workflows.NewWorkerCore(nil)
	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("refresh-collection-%d", collectionID),
		TaskQueue:                h.taskQueue,
		WorkflowExecutionTimeout: time.Hour,
	}
	run, err := h.orchestrator.ExecuteWorkflow(c.Request.Context(), options, w.RefreshCollection, collectionID)
	if err != nil {
		return nil, err
	}

	return &WorkflowTriggerResponse{
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	}, nil
}

// respondStoreError maps store and provider errors to HTTP responses
func (h *handler) respondStoreError(c *gin.Context, err error, message string) {
	if errors.Is(err, domain.ErrRateLimitExceeded) {
		respondRateLimited(c, rateLimitRetryAfterSeconds)
		return
	}
	respondInternalError(c, err, message)
}

// parsePageParams reads and bounds the limit/offset query parameters
func parsePageParams(c *gin.Context) (int, int, error) {
	limit := defaultNFTPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return 0, 0, fmt.Errorf("limit must be a positive integer")
		}
		if parsed > maxNFTPageSize {
			parsed = maxNFTPageSize
		}
		limit = parsed
	}

	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return 0, 0, fmt.Errorf("offset must be a non-negative integer")
		}
		offset = parsed
	}

	return limit, offset, nil
}
