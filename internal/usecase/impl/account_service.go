// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"enplan/config"
	deliverycontext "enplan/internal/delivery/context"
	"enplan/internal/domain/entity"
	domainerrors "enplan/internal/domain/errors"
	"enplan/internal/domain/repository"
	"enplan/internal/domain/service"
	"enplan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	projectRepo  repository.ProjectRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ProjectRepo  repository.ProjectRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		projectRepo:  params.ProjectRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account and immediately issues a token for it.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := entity.NormalizeUsername(input.Username)
	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	var registered *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// Pre-checks give the common case a precise answer; the unique
		// constraints below remain the final authority under concurrency.
		if _, findErr := accountRepo.FindByUsername(ctx, username); findErr == nil {
			return errors.Wrap(domainerrors.ErrUsernameTaken, "username already registered")
		} else if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check username availability")
		}

		if _, findErr := accountRepo.FindByMail(ctx, input.Mail); findErr == nil {
			return errors.Wrap(domainerrors.ErrMailTaken, "mail already registered")
		} else if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check mail availability")
		}

		newAccount := &entity.Account{
			Username:     username,
			Mail:         input.Mail,
			PasswordHash: passwordHash,
			DateJoined:   time.Now(),
		}

		if createErr := accountRepo.Create(ctx, newAccount); createErr != nil {
			return srv.mapDuplicateError(createErr, "failed to create account during registration")
		}

		registered = newAccount

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	accessToken, err := srv.tokenService.Generate(registered.ID, registered.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token after registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("accountID", registered.ID))

	return &usecase.AuthOutput{
		Account:     registered.Project(),
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// Login verifies the credentials, stamps last_login and issues a fresh token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	username := entity.NormalizeUsername(input.Username)
	srv.log(ctx).Debug("Starting login", slog.String("username", username))

	account, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrPasswordIncorrect))

		return nil, errors.Wrap(domainerrors.ErrPasswordIncorrect, "login failed")
	}

	now := time.Now()
	account.LastLogin = &now

	// Single operation - use direct repository instance.
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to stamp last login", slog.Int64("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to stamp last login")
	}

	accessToken, err := srv.tokenService.Generate(account.ID, account.Username)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token during login")
	}

	srv.log(ctx).Debug("Login completed", slog.Int64("accountID", account.ID))

	return &usecase.AuthOutput{
		Account:     account.Project(),
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// Read returns the projection of the account the claims point at.
func (srv *accountService) Read(ctx context.Context, claims *service.Claims) (*entity.Projection, error) {
	account, err := srv.resolveAccount(ctx, srv.accountRepo, claims)
	if err != nil {
		srv.log(ctx).Warn("Read failed", slog.String("username", claims.Username), slog.Any("error", err))

		return nil, err
	}

	return account.Project(), nil
}

// Update applies the enumerated patch fields to the claims' account.
func (srv *accountService) Update(ctx context.Context, claims *service.Claims, input *usecase.UpdateInput) (*entity.Projection, error) {
	srv.log(ctx).Info("Starting account update", slog.String("username", claims.Username))

	// Re-hash outside the transaction when the patch carries a password.
	var newHash string
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during update")
		}
		newHash = hashed
	}

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := srv.resolveAccount(ctx, accountRepo, claims)
		if err != nil {
			return err
		}

		if input.Username != nil {
			account.Username = entity.NormalizeUsername(*input.Username)
		}
		if input.Mail != nil {
			account.Mail = *input.Mail
		}
		if input.Password != nil {
			account.PasswordHash = newHash
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account vanished during update")
			}

			return srv.mapDuplicateError(err, "failed to update account")
		}

		updated = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account update failed", slog.String("username", claims.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account update transaction")
	}

	srv.log(ctx).Debug("Account update completed", slog.Int64("accountID", updated.ID))

	return updated.Project(), nil
}

// Delete removes the claims' account and every project it owns, echoing the
// deleted projection together with the token that authorized the call.
func (srv *accountService) Delete(ctx context.Context, claims *service.Claims, token string) (*usecase.DeleteOutput, error) {
	srv.log(ctx).Info("Starting account deletion", slog.String("username", claims.Username))

	var deleted *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		projectRepo := repoFactory.ProjectRepo()

		account, err := srv.resolveAccount(ctx, accountRepo, claims)
		if err != nil {
			return err
		}

		if err := projectRepo.DeleteByOwner(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to delete owned projects")
		}

		if err := accountRepo.Delete(ctx, account.ID); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account vanished during deletion")
			}

			return errors.Wrap(err, "failed to delete account")
		}

		deleted = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account deletion failed", slog.String("username", claims.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account deletion transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Int64("accountID", deleted.ID))

	return &usecase.DeleteOutput{
		Account:   deleted.Project(),
		Token:     token,
		TokenType: "bearer",
	}, nil
}

// resolveAccount loads the account a set of claims refers to. Tokens minted by
// this service carry the account id; tokens issued before ids were embedded
// only carry the username, so that path stays as a fallback. Either way a miss
// means the token outlived its account.
func (srv *accountService) resolveAccount(ctx context.Context, accountRepo repository.AccountRepository, claims *service.Claims) (*entity.Account, error) {
	var (
		account *entity.Account
		err     error
	)

	if claims.AccountID != 0 {
		account, err = accountRepo.FindByID(ctx, claims.AccountID)
	} else {
		account, err = accountRepo.FindByUsername(ctx, claims.Username)
	}
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	return account, nil
}

// mapDuplicateError converts repository duplicate-key sentinels into their
// domain conflicts so races lost at the constraint report the same way as
// pre-check hits.
func (srv *accountService) mapDuplicateError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateUsername):
		return errors.Wrap(domainerrors.ErrUsernameTaken, msg)
	case errors.Is(err, repository.ErrDuplicateMail):
		return errors.Wrap(domainerrors.ErrMailTaken, msg)
	default:
		return errors.Wrap(err, msg)
	}
}
