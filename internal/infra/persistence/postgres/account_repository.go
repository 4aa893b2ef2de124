// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"enplan/internal/domain/entity"
	domainerrors "enplan/internal/domain/errors"
	"enplan/internal/domain/repository"
	"enplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its store-assigned ID.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).First(&accountM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByUsername retrieves a single account by its lowercase username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("username = ?", entity.NormalizeUsername(username)).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return toAccountDomain(&accountM), nil
}

// FindByMail retrieves a single account by its mail address.
func (repo *accountRepository) FindByMail(ctx context.Context, mail string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("mail = ?", mail).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by mail")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account and assigns its ID. A unique-index rejection
// is translated to the duplicate-key sentinels; the caller must treat them
// exactly like a pre-check conflict, since this rejection is the authoritative
// one under concurrency.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if dupErr := duplicateAccountKey(err); dupErr != nil {
			return dupErr
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID

	return nil
}

// Update replaces the mutable fields of an existing account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", accountM.ID).
		Updates(map[string]any{
			"username":      accountM.Username,
			"mail":          accountM.Mail,
			"password_hash": accountM.PasswordHash,
			"last_login":    accountM.LastLogin,
		})
	if err := result.Error; err != nil {
		if dupErr := duplicateAccountKey(err); dupErr != nil {
			return dupErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes the account with the given ID. The sequence behind the
// primary key never hands the ID out again.
func (repo *accountRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.AccountModel{}, id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// duplicateAccountKey maps a unique-violation on the accounts table to the
// matching sentinel, or returns nil for unrelated errors. When the driver
// reports no constraint name (translated errors), the username index is
// assumed: it is the first one checked by callers and the distinction only
// affects the conflict message, not the outcome.
func duplicateAccountKey(err error) error {
	if !isUniqueConstraintViolation(err) {
		return nil
	}

	if constraint := uniqueConstraintName(err); constraintMentions(constraint, "mail") {
		return repository.ErrDuplicateMail
	}

	return repository.ErrDuplicateUsername
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Username:     data.Username,
		Mail:         data.Mail,
		PasswordHash: data.PasswordHash,
		DateJoined:   data.DateJoined,
		LastLogin:    data.LastLogin,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Username:     data.Username,
		Mail:         data.Mail,
		PasswordHash: data.PasswordHash,
		DateJoined:   data.DateJoined,
		LastLogin:    data.LastLogin,
	}
}
