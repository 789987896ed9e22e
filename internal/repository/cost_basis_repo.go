package repository

import (
	"context"
	"options-tracker/internal/dto"
	"options-tracker/internal/model"
	"options-tracker/pkg/utils"

	"gorm.io/gorm"
)

type CostBasisRepository interface {
	GetJoined(ctx context.Context, param dto.GetCostBasisParam) ([]dto.CostBasisJoined, error)
	Replace(ctx context.Context, tickerID, accountID uint, entries []model.CostBasisEntry, opts ...utils.DBOption) error
	DeleteForTrade(ctx context.Context, tradeID uint, opts ...utils.DBOption) error
	TickerAccountPairs(ctx context.Context) ([][2]uint, error)
}

type costBasisRepository struct {
	db *gorm.DB
}

func NewCostBasisRepository(db *gorm.DB) CostBasisRepository {
	return &costBasisRepository{db: db}
}

func (r *costBasisRepository) GetJoined(ctx context.Context, param dto.GetCostBasisParam) ([]dto.CostBasisJoined, error) {
	var rows []dto.CostBasisJoined
	db := r.db.WithContext(ctx).Model(&model.CostBasisEntry{}).
		Select(`cost_basis.id, cost_basis.account_id, cost_basis.ticker_id, cost_basis.trade_id,
			to_char(cost_basis.transaction_date, 'YYYY-MM-DD') AS transaction_date,
			cost_basis.description, cost_basis.shares, cost_basis.cost_per_share,
			cost_basis.total_amount, cost_basis.running_basis, cost_basis.running_shares,
			cost_basis.basis_per_share,
			tickers.ticker, tickers.company_name, trades.status`).
		Joins("JOIN tickers ON cost_basis.ticker_id = tickers.id").
		Joins("LEFT JOIN trades ON cost_basis.trade_id = trades.id").
		Where("tickers.ticker IS NOT NULL AND tickers.ticker != ''")

	if param.Ticker != nil {
		db = db.Where("tickers.ticker = ?", *param.Ticker)
	}
	if param.AccountID != nil {
		db = db.Where("cost_basis.account_id = ?", *param.AccountID)
	}

	if err := db.Order("tickers.ticker, cost_basis.transaction_date ASC, cost_basis.id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Replace swaps a (ticker, account) ledger for a freshly computed one. Meant
// to run inside the same transaction as the trade mutation that invalidated
// the old rows.
func (r *costBasisRepository) Replace(ctx context.Context, tickerID, accountID uint, entries []model.CostBasisEntry, opts ...utils.DBOption) error {
	db := utils.ApplyOptions(r.db, opts...).WithContext(ctx)
	if err := db.Where("ticker_id = ? AND account_id = ?", tickerID, accountID).
		Delete(&model.CostBasisEntry{}).Error; err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	return db.Create(&entries).Error
}

func (r *costBasisRepository) DeleteForTrade(ctx context.Context, tradeID uint, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db, opts...).WithContext(ctx).
		Where("trade_id = ?", tradeID).Delete(&model.CostBasisEntry{}).Error
}

// TickerAccountPairs lists every distinct (ticker, account) pair that has
// trades, for wholesale ledger rebuilds.
func (r *costBasisRepository) TickerAccountPairs(ctx context.Context) ([][2]uint, error) {
	type row struct {
		TickerID  uint
		AccountID uint
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Trade{}).
		Select("DISTINCT ticker_id, account_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	pairs := make([][2]uint, 0, len(rows))
	for _, rw := range rows {
		pairs = append(pairs, [2]uint{rw.TickerID, rw.AccountID})
	}
	return pairs, nil
}
