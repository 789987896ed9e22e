package repository

import (
	"context"
	"options-tracker/internal/dto"
	"options-tracker/internal/model"
	"options-tracker/pkg/utils"

	"gorm.io/gorm"
)

type CashFlowRepository interface {
	GetJoined(ctx context.Context, param dto.GetCashFlowsParam) ([]dto.CashFlowResponse, error)
	Create(ctx context.Context, cashFlow *model.CashFlow, opts ...utils.DBOption) error
	DeleteForTrade(ctx context.Context, tradeID uint, transactionType string, opts ...utils.DBOption) error
}

type cashFlowRepository struct {
	db *gorm.DB
}

func NewCashFlowRepository(db *gorm.DB) CashFlowRepository {
	return &cashFlowRepository{db: db}
}

func (r *cashFlowRepository) GetJoined(ctx context.Context, param dto.GetCashFlowsParam) ([]dto.CashFlowResponse, error) {
	var rows []dto.CashFlowResponse
	db := r.db.WithContext(ctx).Model(&model.CashFlow{}).
		Select(`cash_flows.id, cash_flows.account_id, cash_flows.transaction_type,
			to_char(cash_flows.transaction_date, 'YYYY-MM-DD') AS transaction_date,
			cash_flows.amount, cash_flows.trade_id, cash_flows.ticker_id,
			accounts.account_name,
			COALESCE(tickers.ticker, '') AS ticker,
			COALESCE(cash_flows.description, '') AS display_description`).
		Joins("LEFT JOIN accounts ON cash_flows.account_id = accounts.id").
		Joins("LEFT JOIN tickers ON cash_flows.ticker_id = tickers.id").
		Where("cash_flows.account_id = ?", param.AccountID)

	if param.StartDate != nil {
		db = db.Where("cash_flows.transaction_date >= ?", *param.StartDate)
	}
	if param.EndDate != nil {
		db = db.Where("cash_flows.transaction_date <= ?", *param.EndDate)
	}

	if err := db.Order("cash_flows.transaction_date DESC, cash_flows.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *cashFlowRepository) Create(ctx context.Context, cashFlow *model.CashFlow, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db, opts...).WithContext(ctx).Create(cashFlow).Error
}

func (r *cashFlowRepository) DeleteForTrade(ctx context.Context, tradeID uint, transactionType string, opts ...utils.DBOption) error {
	db := utils.ApplyOptions(r.db, opts...).WithContext(ctx).Where("trade_id = ?", tradeID)
	if transactionType != "" {
		db = db.Where("transaction_type = ?", transactionType)
	}
	return db.Delete(&model.CashFlow{}).Error
}
