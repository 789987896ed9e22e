package repository

import (
	"context"
	"errors"
	"fmt"
	"options-tracker/config"
	"options-tracker/internal/dto"
	"options-tracker/internal/model"
	"options-tracker/pkg/cache"
	"time"

	"gorm.io/gorm"
)

type CommissionRepository interface {
	GetJoined(ctx context.Context, accountID uint) ([]dto.CommissionResponse, error)
	Create(ctx context.Context, commission *model.Commission) error
	RateInEffect(ctx context.Context, accountID uint, onDate time.Time) (float64, error)
}

type commissionRepository struct {
	cfg           *config.Config
	inmemoryCache cache.Cache
	db            *gorm.DB
}

func NewCommissionRepository(cfg *config.Config, inmemoryCache cache.Cache, db *gorm.DB) CommissionRepository {
	return &commissionRepository{cfg: cfg, inmemoryCache: inmemoryCache, db: db}
}

func (r *commissionRepository) GetJoined(ctx context.Context, accountID uint) ([]dto.CommissionResponse, error) {
	var rows []dto.CommissionResponse
	err := r.db.WithContext(ctx).Model(&model.Commission{}).
		Select(`commissions.id, commissions.account_id, commissions.commission_rate,
			to_char(commissions.effective_date, 'YYYY-MM-DD') AS effective_date,
			commissions.notes, accounts.account_name`).
		Joins("LEFT JOIN accounts ON commissions.account_id = accounts.id").
		Where("commissions.account_id = ?", accountID).
		Order("commissions.effective_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *commissionRepository) Create(ctx context.Context, commission *model.Commission) error {
	if err := r.db.WithContext(ctx).Create(commission).Error; err != nil {
		return err
	}
	// New rates change what RateInEffect should answer.
	r.inmemoryCache.Flush()
	return nil
}

// RateInEffect returns the per-share commission rate effective for the
// account on the given date: the row with the latest effective_date on or
// before it, or 0 when the account has no rates yet.
func (r *commissionRepository) RateInEffect(ctx context.Context, accountID uint, onDate time.Time) (float64, error) {
	key := fmt.Sprintf("commission:%d:%s", accountID, onDate.Format("2006-01-02"))
	if rate, found := cache.GetFromCache[float64](r.inmemoryCache, key); found {
		return rate, nil
	}

	var commission model.Commission
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND effective_date <= ?", accountID, onDate.Format("2006-01-02")).
		Order("effective_date DESC").
		First(&commission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	r.inmemoryCache.Set(key, commission.CommissionRate, r.cfg.Cache.CommissionDuration)
	return commission.CommissionRate, nil
}
