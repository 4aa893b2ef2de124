package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"enplan/internal/domain/entity"
	domainerrors "enplan/internal/domain/errors"
	"enplan/internal/domain/repository"
	"enplan/internal/domain/service"
	mockRepo "enplan/internal/mocks/repository"
	mockSvc "enplan/internal/mocks/service"
	"enplan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	projectRepo  *mockRepo.MockProjectRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		ProjectRepo:  projectRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      svc,
		txManager:    txManager,
		accountRepo:  accountRepo,
		projectRepo:  projectRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// expectTransaction routes Execute through a factory mock so the function
// under test runs against transaction-scoped repositories.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
	t.Helper()
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "Alice",
		Mail:     "alice@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	// Registration lowercases the username before any lookup.
	txAccountRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().
		FindByMail(ctx, input.Mail).
		Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			account.ID = 1
		}).
		Return(nil)

	fx.tokenService.EXPECT().Generate(int64(1), "alice").Return("signed_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "alice", output.Account.Username)
	assert.Equal(t, "alice@example.com", output.Account.Mail)
	assert.Equal(t, "signed_token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.False(t, output.Account.DateJoined.IsZero())
	assert.Nil(t, output.Account.LastLogin)
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Mail:     "alice@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	txAccountRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.Account{ID: 1, Username: "alice"}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountService_Register_MailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Mail:     "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	txAccountRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().
		FindByMail(ctx, "taken@example.com").
		Return(&entity.Account{ID: 2, Mail: "taken@example.com"}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMailTaken))
}

func TestAccountService_Register_RaceLostAtConstraint(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Mail:     "alice@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	// Both pre-checks pass, then a concurrent registration wins the insert.
	// The unique index reports exactly like the pre-check would have.
	txAccountRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().
		FindByMail(ctx, input.Mail).
		Return(nil, repository.ErrAccountNotFound)
	txAccountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateUsername)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "Alice", Password: "Password123!"}

	stored := &entity.Account{
		ID:           1,
		Username:     "alice",
		Mail:         "alice@example.com",
		PasswordHash: "hashed_password",
		DateJoined:   time.Now().Add(-24 * time.Hour),
	}

	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
	fx.hasher.EXPECT().Check(input.Password, "hashed_password").Return(true)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			require.NotNil(t, account.LastLogin)
			assert.WithinDuration(t, time.Now(), *account.LastLogin, time.Minute)
		}).
		Return(nil)
	fx.tokenService.EXPECT().Generate(int64(1), "alice").Return("signed_token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed_token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	require.NotNil(t, output.Account.LastLogin)
}

func TestAccountService_Login_UnknownAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "ghost", Password: "whatever"}

	fx.accountRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Username: "alice", Password: "wrong"}

	stored := &entity.Account{ID: 1, Username: "alice", PasswordHash: "hashed_password"}

	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordIncorrect))
}

func TestAccountService_Read_ByClaimID(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}

	stored := &entity.Account{ID: 1, Username: "alice", Mail: "alice@example.com", PasswordHash: "hashed"}
	fx.accountRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)

	projection, err := fx.service.Read(ctx, claims)

	require.NoError(t, err)
	assert.Equal(t, int64(1), projection.ID)
	assert.Equal(t, "alice", projection.Username)
	assert.Equal(t, "alice@example.com", projection.Mail)
}

func TestAccountService_Read_UsernameFallback(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	// Tokens issued before ids were embedded carry only a username.
	claims := &service.Claims{Username: "alice"}

	stored := &entity.Account{ID: 1, Username: "alice", Mail: "alice@example.com"}
	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)

	projection, err := fx.service.Read(ctx, claims)

	require.NoError(t, err)
	assert.Equal(t, int64(1), projection.ID)
}

func TestAccountService_Read_TokenOutlivesAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}

	fx.accountRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(nil, repository.ErrAccountNotFound)

	projection, err := fx.service.Read(ctx, claims)

	require.Error(t, err)
	assert.Nil(t, projection)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAccountService_Update_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}
	newMail := "new@example.com"
	newPassword := "NewPassword456!"
	input := &usecase.UpdateInput{Mail: &newMail, Password: &newPassword}

	fx.hasher.EXPECT().Hash(newPassword).Return("new_hash", nil)

	stored := &entity.Account{ID: 1, Username: "alice", Mail: "alice@example.com", PasswordHash: "old_hash"}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	txAccountRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	txAccountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, "new@example.com", account.Mail)
			assert.Equal(t, "new_hash", account.PasswordHash)
			assert.Equal(t, "alice", account.Username)
		}).
		Return(nil)

	projection, err := fx.service.Update(ctx, claims, input)

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", projection.Mail)
}

func TestAccountService_Update_NormalizesUsername(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}
	newUsername := "  NewAlice  "
	input := &usecase.UpdateInput{Username: &newUsername}

	stored := &entity.Account{ID: 1, Username: "alice", Mail: "alice@example.com"}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	txAccountRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	txAccountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, "newalice", account.Username)
		}).
		Return(nil)

	projection, err := fx.service.Update(ctx, claims, input)

	require.NoError(t, err)
	assert.Equal(t, "newalice", projection.Username)
}

func TestAccountService_Update_DuplicateMail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}
	newMail := "taken@example.com"
	input := &usecase.UpdateInput{Mail: &newMail}

	stored := &entity.Account{ID: 1, Username: "alice", Mail: "alice@example.com"}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	txAccountRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	txAccountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateMail)

	projection, err := fx.service.Update(ctx, claims, input)

	require.Error(t, err)
	assert.Nil(t, projection)
	assert.True(t, errors.Is(err, domainerrors.ErrMailTaken))
}

func TestAccountService_Delete_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}

	stored := &entity.Account{ID: 1, Username: "alice", Mail: "alice@example.com"}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txProjectRepo := mockRepo.NewMockProjectRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	factory.EXPECT().ProjectRepo().Return(txProjectRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	txAccountRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	txProjectRepo.EXPECT().DeleteByOwner(ctx, int64(1)).Return(nil)
	txAccountRepo.EXPECT().Delete(ctx, int64(1)).Return(nil)

	output, err := fx.service.Delete(ctx, claims, "the_bearer_token")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "alice", output.Account.Username)
	assert.Equal(t, "the_bearer_token", output.Token)
	assert.Equal(t, "bearer", output.TokenType)
}

func TestAccountService_Delete_UsernameFallback(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	claims := &service.Claims{Username: "alice"}

	stored := &entity.Account{ID: 5, Username: "alice"}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txProjectRepo := mockRepo.NewMockProjectRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	factory.EXPECT().ProjectRepo().Return(txProjectRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	txAccountRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
	txProjectRepo.EXPECT().DeleteByOwner(ctx, int64(5)).Return(nil)
	txAccountRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)

	output, err := fx.service.Delete(ctx, claims, "token")

	require.NoError(t, err)
	assert.Equal(t, int64(5), output.Account.ID)
}

func TestAccountService_Delete_TokenOutlivesAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}

	txAccountRepo := mockRepo.NewMockAccountRepository(t)
	txProjectRepo := mockRepo.NewMockProjectRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(txAccountRepo)
	factory.EXPECT().ProjectRepo().Return(txProjectRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	txAccountRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Delete(ctx, claims, "token")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
