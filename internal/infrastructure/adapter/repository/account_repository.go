package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/wallet-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wallet-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wallet-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/wallet-processor/internal/infrastructure/adapter/model"
)

// AccountRepository implements the ledger store contract using GORM.
// Every write method runs inside a database transaction so a balance update
// and its appended ledger entries commit or roll back together.
type AccountRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts an account model with its history to an entity
func (r *AccountRepository) modelToEntity(accountModel *model.Account) *entity.Account {
	account := &entity.Account{
		ID:        accountModel.ID,
		Email:     accountModel.Email,
		Name:      accountModel.Name,
		CreatedAt: accountModel.CreatedAt,
	}
	account.SetBalance(accountModel.Balance, r.timeProvider)
	account.UpdatedAt = accountModel.UpdatedAt

	account.Transactions = make([]entity.Transaction, 0, len(accountModel.Transactions))
	for i := range accountModel.Transactions {
		t := &accountModel.Transactions[i]
		account.Transactions = append(account.Transactions, entity.Transaction{
			ID:          t.ID,
			AccountID:   t.AccountID,
			Direction:   entity.Direction(t.Direction),
			Amount:      t.Amount,
			Reference:   t.Reference,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		})
	}
	return account
}

// transactionToModel converts a new ledger entry to its database model
func transactionToModel(t *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		AccountID:   t.AccountID,
		Direction:   string(t.Direction),
		Amount:      t.Amount,
		Reference:   t.Reference,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, accountID uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Account not found", map[string]any{
			"account_id": accountID.String(),
		})
		return errs.ErrAccountNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"account_id": accountID.String(),
		"error":      err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		if strings.Contains(err.Error(), "idx_reference_direction") {
			return errs.NewDuplicateReferenceError(accountID, "")
		}
		return errs.ErrDuplicateAccount
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves an account with its transaction history, oldest entry first
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&accountModel, "id = ?", id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account", result.Error, id)
	}

	return r.modelToEntity(&accountModel), nil
}

// GetByEmail retrieves an account by its unique email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&accountModel, "email = ?", email)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting account by email", result.Error, uuid.Nil)
	}

	return r.modelToEntity(&accountModel), nil
}

// Create persists a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.Account{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Balance:   account.Balance(),
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating account", result.Error, account.ID)
	}

	r.logger.Info("Account created", map[string]any{
		"account_id": account.ID.String(),
		"email":      account.Email,
	})
	return nil
}

// Save persists the account's updated balance together with the given new
// ledger entries in one database transaction
func (r *AccountRepository) Save(ctx context.Context, account *entity.Account, newTransactions ...*entity.Transaction) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.updateBalance(tx, account.ID, account.Balance(), account.UpdatedAt); err != nil {
			return err
		}
		for _, t := range newTransactions {
			if err := tx.Create(transactionToModel(t)).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return r.handleDatabaseError("saving account", err, account.ID)
	}
	return nil
}

// SaveTransfer persists both sides of a transfer in one database transaction.
// The sender's balance is written absolutely (it was re-read under the
// sender's lock); the receiver's is applied as an increment because the
// receiver is not locked and its row may have moved since it was read.
func (r *AccountRepository) SaveTransfer(
	ctx context.Context,
	sender *entity.Account, debit *entity.Transaction,
	receiver *entity.Account, credit *entity.Transaction,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.updateBalance(tx, sender.ID, sender.Balance(), sender.UpdatedAt); err != nil {
			return err
		}

		result := tx.Model(&model.Account{}).
			Where("id = ?", receiver.ID).
			Updates(map[string]any{
				"balance":    gorm.Expr("balance + ?", credit.Amount),
				"updated_at": receiver.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Create(transactionToModel(debit)).Error; err != nil {
			return err
		}
		return tx.Create(transactionToModel(credit)).Error
	})

	if err != nil {
		return r.handleDatabaseError("saving transfer", err, sender.ID)
	}

	r.logger.Debug("Transfer persisted", map[string]any{
		"sender_id":   sender.ID.String(),
		"receiver_id": receiver.ID.String(),
		"reference":   debit.Reference,
	})
	return nil
}

// ReferenceExists reports whether any ledger entry carries the given reference
func (r *AccountRepository) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("reference = ?", reference).
		Count(&count)

	if result.Error != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count > 0, nil
}

// updateBalance writes an absolute balance for the given account id,
// reporting not-found when no row was touched
func (r *AccountRepository) updateBalance(tx *gorm.DB, id uuid.UUID, balance int64, updatedAt time.Time) error {
	result := tx.Model(&model.Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"balance":    balance,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
