package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockSequenceRepository is a mock type for the SequenceRepository interface
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) NextNumber(ctx context.Context, tenantID string, docType string) (int64, error) {
	args := m.Called(ctx, tenantID, docType)
	return args.Get(0).(int64), args.Error(1)
}

// countingSequenceRepository is an in-memory counter used for the
// concurrency test, mirroring the atomicity contract of the real store.
type countingSequenceRepository struct {
	mu       sync.Mutex
	counters map[string]int64
}

func (r *countingSequenceRepository) NextNumber(_ context.Context, tenantID string, docType string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counters == nil {
		r.counters = make(map[string]int64)
	}
	key := tenantID + "/" + docType
	r.counters[key]++
	return r.counters[key], nil
}

// --- Test Suite Setup ---

type SequenceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSequenceRepository
	service  portssvc.SequenceSvcFacade
	tenantID string
}

func (suite *SequenceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSequenceRepository)
	suite.service = services.NewSequenceService(suite.mockRepo)
	suite.tenantID = uuid.NewString()
}

// --- Test Cases ---

func (suite *SequenceServiceTestSuite) TestNextTenantCode_Format() {
	ctx := context.Background()

	suite.mockRepo.On("NextNumber", ctx, "GLOBAL", "TEN").Return(int64(1), nil).Once()

	code, err := suite.service.NextTenantCode(ctx)

	suite.Require().NoError(err)
	suite.Equal("TEN000001", code)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SequenceServiceTestSuite) TestNextJournalNumber_Format() {
	ctx := context.Background()

	suite.mockRepo.On("NextNumber", ctx, suite.tenantID, "GN").Return(int64(42), nil).Once()

	number, err := suite.service.NextJournalNumber(ctx, suite.tenantID, domain.GeneralJournal)

	suite.Require().NoError(err)
	suite.Equal("GN000042", number)
}

func (suite *SequenceServiceTestSuite) TestNextJournalNumber_TypePrefixes() {
	ctx := context.Background()
	cases := map[domain.JournalType]string{
		domain.SalesJournal:   "SL000001",
		domain.ReceiptJournal: "RC000001",
		domain.OpeningJournal: "OP000001",
	}

	for journalType, want := range cases {
		repo := new(MockSequenceRepository)
		svc := services.NewSequenceService(repo)
		repo.On("NextNumber", ctx, suite.tenantID, journalType.NumberPrefix()).Return(int64(1), nil).Once()

		number, err := svc.NextJournalNumber(ctx, suite.tenantID, journalType)

		suite.Require().NoError(err)
		suite.Equal(want, number)
	}
}

func (suite *SequenceServiceTestSuite) TestNextJournalNumber_WidthOverflow() {
	ctx := context.Background()

	// Padding widens, it never truncates.
	suite.mockRepo.On("NextNumber", ctx, suite.tenantID, "GN").Return(int64(1234567), nil).Once()

	number, err := suite.service.NextJournalNumber(ctx, suite.tenantID, domain.GeneralJournal)

	suite.Require().NoError(err)
	suite.Equal("GN1234567", number)
}

func (suite *SequenceServiceTestSuite) TestNextJournalNumber_ConcurrentAllocationsAreUnique() {
	ctx := context.Background()
	svc := services.NewSequenceService(&countingSequenceRepository{})

	const workers = 50
	results := make(chan string, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			number, err := svc.NextJournalNumber(ctx, suite.tenantID, domain.GeneralJournal)
			suite.NoError(err)
			results <- number
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]struct{}, workers)
	for number := range results {
		_, dup := seen[number]
		suite.False(dup, "number %s allocated twice", number)
		seen[number] = struct{}{}
	}
	suite.Len(seen, workers)
}

func TestSequenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SequenceServiceTestSuite))
}
