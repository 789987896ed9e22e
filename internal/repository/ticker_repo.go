package repository

import (
	"context"
	"errors"
	"options-tracker/internal/model"
	"options-tracker/pkg/utils"
	"strings"

	"gorm.io/gorm"
)

type TickerRepository interface {
	GetBySymbol(ctx context.Context, symbol string) (*model.Ticker, error)
	GetOrCreate(ctx context.Context, symbol string, opts ...utils.DBOption) (*model.Ticker, error)
	UpdateCompanyName(ctx context.Context, symbol, companyName string) error
}

type tickerRepository struct {
	db *gorm.DB
}

func NewTickerRepository(db *gorm.DB) TickerRepository {
	return &tickerRepository{db: db}
}

func (r *tickerRepository) GetBySymbol(ctx context.Context, symbol string) (*model.Ticker, error) {
	var ticker model.Ticker
	err := r.db.WithContext(ctx).Where("ticker = ?", strings.ToUpper(symbol)).First(&ticker).Error
	if err != nil {
		return nil, err
	}
	return &ticker, nil
}

// GetOrCreate resolves a symbol to its ticker row, creating one with the
// symbol as placeholder company name when it is unknown.
func (r *tickerRepository) GetOrCreate(ctx context.Context, symbol string, opts ...utils.DBOption) (*model.Ticker, error) {
	symbol = strings.ToUpper(symbol)
	db := utils.ApplyOptions(r.db, opts...).WithContext(ctx)

	var ticker model.Ticker
	err := db.Where("ticker = ?", symbol).First(&ticker).Error
	if err == nil {
		return &ticker, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ticker = model.Ticker{Ticker: symbol, CompanyName: symbol}
	if err := db.Create(&ticker).Error; err != nil {
		return nil, err
	}
	return &ticker, nil
}

func (r *tickerRepository) UpdateCompanyName(ctx context.Context, symbol, companyName string) error {
	symbol = strings.ToUpper(symbol)
	res := r.db.WithContext(ctx).Model(&model.Ticker{}).
		Where("ticker = ?", symbol).
		Update("company_name", companyName)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.db.WithContext(ctx).Create(&model.Ticker{Ticker: symbol, CompanyName: companyName}).Error
	}
	return nil
}
