package workflows_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/ryft-xyz/ryft-indexer/internal/logger"
	"github.com/ryft-xyz/ryft-indexer/internal/mocks"
	"github.com/ryft-xyz/ryft-indexer/internal/workflows"
)

// RefreshCollectionWorkflowTestSuite is the test suite for collection refresh workflow tests
type RefreshCollectionWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *RefreshCollectionWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor)
}

// TearDownTest is called after each test
func (s *RefreshCollectionWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestRefreshCollectionWorkflowTestSuite runs the test suite
func TestRefreshCollectionWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(RefreshCollectionWorkflowTestSuite))
}

func (s *RefreshCollectionWorkflowTestSuite) TestRefreshCollection_Success() {
	collectionID := int64(11)

	s.env.OnActivity(s.executor.FetchCollectionNFTs, mock.Anything, collectionID).Return(10000, nil)
	s.env.OnActivity(s.executor.ComputeCollectionRarity, mock.Anything, collectionID).Return(nil)
	s.env.OnActivity(s.executor.RelinkTransactions, mock.Anything, collectionID).Return(25, nil)
	s.env.OnActivity(s.executor.RelinkWalletHoldings, mock.Anything, collectionID).Return(4, nil)

	s.env.ExecuteWorkflow(s.workerCore.RefreshCollection, collectionID)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *RefreshCollectionWorkflowTestSuite) TestRefreshCollection_EmptyCollectionSkipsRarity() {
	collectionID := int64(12)

	s.env.OnActivity(s.executor.FetchCollectionNFTs, mock.Anything, collectionID).Return(0, nil)

	s.env.ExecuteWorkflow(s.workerCore.RefreshCollection, collectionID)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *RefreshCollectionWorkflowTestSuite) TestRefreshCollection_RelinkFailureIsNonFatal() {
	collectionID := int64(13)

	s.env.OnActivity(s.executor.FetchCollectionNFTs, mock.Anything, collectionID).Return(500, nil)
	s.env.OnActivity(s.executor.ComputeCollectionRarity, mock.Anything, collectionID).Return(nil)
	s.env.OnActivity(s.executor.RelinkTransactions, mock.Anything, collectionID).
		Return(0, errors.New("deadlock detected"))
	s.env.OnActivity(s.executor.RelinkWalletHoldings, mock.Anything, collectionID).Return(2, nil)

	s.env.ExecuteWorkflow(s.workerCore.RefreshCollection, collectionID)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *RefreshCollectionWorkflowTestSuite) TestRefreshCollection_RarityFailureAborts() {
	collectionID := int64(14)

	s.env.OnActivity(s.executor.FetchCollectionNFTs, mock.Anything, collectionID).Return(500, nil)
	s.env.OnActivity(s.executor.ComputeCollectionRarity, mock.Anything, collectionID).
		Return(errors.New("supply divisor missing"))

	s.env.ExecuteWorkflow(s.workerCore.RefreshCollection, collectionID)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}
