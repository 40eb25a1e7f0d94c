package repositories

import (
	"context"
	"database/sql"
	"errors"

	"ledger/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository persists ledger rows. A non-empty sessionID on the
// by-id methods adds an ownership filter; an empty one matches by id alone.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	ListBySession(ctx context.Context, sessionID string) ([]models.Transaction, error)
	FindByID(ctx context.Context, id, sessionID string) (*models.Transaction, error)
	Update(ctx context.Context, id, sessionID string, fields TransactionFields) error
	Delete(ctx context.Context, id, sessionID string) error
	SumAmount(ctx context.Context, sessionID string, txType models.TransactionType) (*float64, error)
}

// TransactionFields are the mutable columns of a transaction.
type TransactionFields struct {
	Title  string
	Amount float64
	Type   models.TransactionType
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository returns a gorm backed TransactionRepository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *transactionRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&transactions).Error
	return transactions, err
}

// FindByID returns nil without error when no row matches.
func (r *transactionRepository) FindByID(ctx context.Context, id, sessionID string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.byID(ctx, id, sessionID).First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) Update(ctx context.Context, id, sessionID string, fields TransactionFields) error {
	// a map so zero amounts and empty strings are written too
	return r.byID(ctx, id, sessionID).
		Model(&models.Transaction{}).
		Updates(map[string]interface{}{
			"title":  fields.Title,
			"type":   fields.Type,
			"amount": fields.Amount,
		}).Error
}

func (r *transactionRepository) Delete(ctx context.Context, id, sessionID string) error {
	return r.byID(ctx, id, sessionID).Delete(&models.Transaction{}).Error
}

// SumAmount returns SUM(amount) over the session's rows, restricted to
// txType when it is non-empty. The result is nil when no row matched.
func (r *transactionRepository) SumAmount(ctx context.Context, sessionID string, txType models.TransactionType) (*float64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("SUM(amount)").
		Where("session_id = ?", sessionID)
	if txType != "" {
		query = query.Where("type = ?", txType)
	}

	var sum sql.NullFloat64
	if err := query.Row().Scan(&sum); err != nil {
		return nil, err
	}
	if !sum.Valid {
		return nil, nil
	}
	return &sum.Float64, nil
}

func (r *transactionRepository) byID(ctx context.Context, id, sessionID string) *gorm.DB {
	query := r.db.WithContext(ctx).Where("id = ?", id)
	if sessionID != "" {
		query = query.Where("session_id = ?", sessionID)
	}
	return query
}
