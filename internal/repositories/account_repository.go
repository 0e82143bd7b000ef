package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dynastytrade/internal/models/db_models"
	"dynastytrade/pkg/utils"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error)
	// IncrementTradeCount bumps the counter by one as a single conditional
	// statement: pro accounts always pass, free accounts only while under
	// cap. Returns ErrTradeLimitExceeded when the guard rejects the update,
	// which is what keeps concurrent requests from blowing past the cap.
	IncrementTradeCount(ctx context.Context, id uuid.UUID, cap int) error
	UpdatePlan(ctx context.Context, id uuid.UUID, plan db_models.PlanType) error
	UpdateStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Create(account).Error
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) IncrementTradeCount(ctx context.Context, id uuid.UUID, cap int) error {
	res := a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ? AND (plan = ? OR trade_count < ?)", id, db_models.PlanPro, cap).
		UpdateColumn("trade_count", gorm.Expr("trade_count + 1"))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrTradeLimitExceeded
	}
	return nil
}

func (a *accountRepository) UpdatePlan(ctx context.Context, id uuid.UUID, plan db_models.PlanType) error {
	// Plan changes reset the counter, matching the upgrade flow.
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"plan": plan, "trade_count": 0}).Error
}

func (a *accountRepository) UpdateStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error {
	return a.db.WithContext(ctx).
		Model(&db_models.Account{}).
		Where("id = ?", id).
		Update("stripe_customer_id", customerID).Error
}
