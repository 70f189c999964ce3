package services_test

import (
	"context"
	"testing"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, tenantID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, tenantID string, code string) (*domain.Account, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, tenantID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tenantID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, tenantID string, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByType(ctx context.Context, tenantID string, accountType domain.AccountType) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindChildren(ctx context.Context, tenantID string, accountID string) ([]domain.Account, error) {
	args := m.Called(ctx, tenantID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) HasChildren(ctx context.Context, tenantID string, accountID string) (bool, error) {
	args := m.Called(ctx, tenantID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) HasJournalLines(ctx context.Context, tenantID string, accountID string) (bool, error) {
	args := m.Called(ctx, tenantID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, tenantID string, accountID string) error {
	args := m.Called(ctx, tenantID, accountID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	tenantID string
	userID   string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:         "1100",
		Name:         "Cash",
		AccountType:  domain.Asset,
		CurrencyCode: "SAR",
	}

	suite.mockRepo.On("FindAccountByCode", ctx, suite.tenantID, "1100").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.Equal(suite.tenantID, account.TenantID)
	suite.Equal("1100", account.Code)
	suite.Equal(1, account.Level, "root accounts start at level 1")
	suite.Equal(domain.DebitBalance, account.BalanceType, "asset defaults to debit balance")
	suite.True(account.IsActive)
	suite.True(account.IsPostingAllowed, "posting allowed defaults to true")
	suite.Equal(suite.userID, account.CreatedBy)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultsCreditBalanceForRevenue() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:         "4100",
		Name:         "Sales Revenue",
		AccountType:  domain.Revenue,
		CurrencyCode: "SAR",
	}

	suite.mockRepo.On("FindAccountByCode", ctx, suite.tenantID, "4100").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.CreditBalance, account.BalanceType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:         "1100",
		Name:         "Cash",
		AccountType:  domain.Asset,
		CurrencyCode: "SAR",
	}
	existing := &domain.Account{AccountID: uuid.NewString(), Code: "1100"}

	suite.mockRepo.On("FindAccountByCode", ctx, suite.tenantID, "1100").Return(existing, nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DerivesLevelFromParent() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Code:            "1110",
		Name:            "Petty Cash",
		AccountType:     domain.Asset,
		CurrencyCode:    "SAR",
		ParentAccountID: &parentID,
	}
	parent := &domain.Account{AccountID: parentID, Code: "1100", Level: 2, AccountType: domain.Asset}

	suite.mockRepo.On("FindAccountByCode", ctx, suite.tenantID, "1110").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByID", ctx, suite.tenantID, parentID).Return(parent, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(3, account.Level, "level is parent.Level + 1")
	suite.Equal(parentID, account.ParentAccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentNotFound() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Code:            "1110",
		Name:            "Petty Cash",
		AccountType:     domain.Asset,
		CurrencyCode:    "SAR",
		ParentAccountID: &parentID,
	}

	suite.mockRepo.On("FindAccountByCode", ctx, suite.tenantID, "1110").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindAccountByID", ctx, suite.tenantID, parentID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.CreateAccount(ctx, suite.tenantID, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "parent account")
}

func (suite *AccountServiceTestSuite) TestListAccounts_BuildsTree() {
	ctx := context.Background()
	rootID := uuid.NewString()
	childID := uuid.NewString()
	grandchildID := uuid.NewString()

	flat := []domain.Account{
		{AccountID: rootID, Code: "1000", Level: 1},
		{AccountID: childID, Code: "1100", Level: 2, ParentAccountID: rootID},
		{AccountID: grandchildID, Code: "1110", Level: 3, ParentAccountID: childID},
	}

	suite.mockRepo.On("ListAccounts", ctx, suite.tenantID, false).Return(flat, nil).Once()

	tree, err := suite.service.ListAccounts(ctx, suite.tenantID, false)

	suite.Require().NoError(err)
	suite.Require().Len(tree, 1)
	suite.Equal(rootID, tree[0].AccountID)
	suite.Require().Len(tree[0].Children, 1)
	suite.Equal(childID, tree[0].Children[0].AccountID)
	suite.Require().Len(tree[0].Children[0].Children, 1)
	suite.Equal(grandchildID, tree[0].Children[0].Children[0].AccountID)
}

func (suite *AccountServiceTestSuite) TestListAccounts_OrphanPromotedToRoot() {
	ctx := context.Background()
	orphanID := uuid.NewString()

	flat := []domain.Account{
		{AccountID: orphanID, Code: "1100", Level: 2, ParentAccountID: uuid.NewString()},
	}

	suite.mockRepo.On("ListAccounts", ctx, suite.tenantID, false).Return(flat, nil).Once()

	tree, err := suite.service.ListAccounts(ctx, suite.tenantID, false)

	suite.Require().NoError(err)
	suite.Require().Len(tree, 1)
	suite.Equal(orphanID, tree[0].AccountID)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_RejectsWithChildren() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID}

	suite.mockRepo.On("FindAccountByID", ctx, suite.tenantID, accountID).Return(account, nil).Once()
	suite.mockRepo.On("HasChildren", ctx, suite.tenantID, accountID).Return(true, nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.tenantID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "child accounts")
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_RejectsWithJournalLines() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID}

	suite.mockRepo.On("FindAccountByID", ctx, suite.tenantID, accountID).Return(account, nil).Once()
	suite.mockRepo.On("HasChildren", ctx, suite.tenantID, accountID).Return(false, nil).Once()
	suite.mockRepo.On("HasJournalLines", ctx, suite.tenantID, accountID).Return(true, nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.tenantID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "posted transactions")
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID}

	suite.mockRepo.On("FindAccountByID", ctx, suite.tenantID, accountID).Return(account, nil).Once()
	suite.mockRepo.On("HasChildren", ctx, suite.tenantID, accountID).Return(false, nil).Once()
	suite.mockRepo.On("HasJournalLines", ctx, suite.tenantID, accountID).Return(false, nil).Once()
	suite.mockRepo.On("DeleteAccount", ctx, suite.tenantID, accountID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.tenantID, accountID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialUpdate() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, Name: "Old Name", IsActive: true}
	newName := "New Name"

	suite.mockRepo.On("FindAccountByID", ctx, suite.tenantID, accountID).Return(account, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Name == newName && a.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, suite.tenantID, accountID, dto.UpdateAccountRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoFieldsIsNoOp() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, Name: "Unchanged"}

	suite.mockRepo.On("FindAccountByID", ctx, suite.tenantID, accountID).Return(account, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, suite.tenantID, accountID, dto.UpdateAccountRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Unchanged", updated.Name)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, suite.tenantID, accountID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, suite.tenantID, accountID)

	suite.Require().Error(err)
	suite.Nil(account)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
