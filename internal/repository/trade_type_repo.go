package repository

import (
	"context"
	"errors"
	"options-tracker/internal/model"
	"strings"

	"gorm.io/gorm"
)

type TradeTypeRepository interface {
	Get(ctx context.Context) ([]model.TradeType, error)
	GetByCode(ctx context.Context, typeCode string) (*model.TradeType, error)
}

type tradeTypeRepository struct {
	db *gorm.DB
}

func NewTradeTypeRepository(db *gorm.DB) TradeTypeRepository {
	return &tradeTypeRepository{db: db}
}

func (r *tradeTypeRepository) Get(ctx context.Context) ([]model.TradeType, error) {
	var types []model.TradeType
	if err := r.db.WithContext(ctx).Order("category, type_name").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetByCode resolves a trade type by its catalogue code ("ROCT_PUT"). A nil
// result without error means the code is not in the catalogue, which is
// allowed for legacy ticker-prefixed types.
func (r *tradeTypeRepository) GetByCode(ctx context.Context, typeCode string) (*model.TradeType, error) {
	code := strings.ReplaceAll(strings.ToUpper(typeCode), " ", "_")
	var tradeType model.TradeType
	err := r.db.WithContext(ctx).Where("type_code = ?", code).First(&tradeType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tradeType, nil
}
