package repository

import (
	"context"
	"fmt"
	"options-tracker/internal/dto"
	"options-tracker/internal/model"
	"options-tracker/pkg/utils"
	"strings"
	"time"

	"gorm.io/gorm"
)

type TradeRepository interface {
	Get(ctx context.Context, param dto.GetTradesParam, opts ...utils.DBOption) ([]model.Trade, error)
	GetByID(ctx context.Context, id uint) (*model.Trade, error)
	Create(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error
	Update(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error
	UpdateColumns(ctx context.Context, id uint, values map[string]interface{}, opts ...utils.DBOption) error
	Delete(ctx context.Context, id uint, opts ...utils.DBOption) error
	InsertStatusHistory(ctx context.Context, history *model.TradeStatusHistory, opts ...utils.DBOption) error
	ExpireOpenPast(ctx context.Context, cutoff time.Time) (int64, error)

	SumPremiums(ctx context.Context, param dto.GetTradesParam) (float64, error)
	SumMarginCapital(ctx context.Context, param dto.GetTradesParam) (float64, error)
	MarginBreakdown(ctx context.Context, param dto.GetTradesParam) (map[string]dto.BankrollBucket, error)
	DailyPremiums(ctx context.Context, param dto.GetTradesParam) ([]dto.ChartPoint, error)
	TopSymbols(ctx context.Context, limit int) ([]dto.TopSymbol, error)
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

func (r *tradeRepository) filtered(ctx context.Context, param dto.GetTradesParam, opts ...utils.DBOption) *gorm.DB {
	qFilter := []string{}
	qFilterParam := []interface{}{}

	if len(param.IDs) > 0 {
		qFilter = append(qFilter, "trades.id IN (?)")
		qFilterParam = append(qFilterParam, param.IDs)
	}
	if param.AccountID != nil {
		qFilter = append(qFilter, "trades.account_id = ?")
		qFilterParam = append(qFilterParam, *param.AccountID)
	}
	if param.TickerID != nil {
		qFilter = append(qFilter, "trades.ticker_id = ?")
		qFilterParam = append(qFilterParam, *param.TickerID)
	}
	if len(param.Statuses) > 0 {
		qFilter = append(qFilter, "trades.status IN (?)")
		qFilterParam = append(qFilterParam, param.Statuses)
	}
	if len(param.ExcludeStatuses) > 0 {
		qFilter = append(qFilter, "trades.status NOT IN (?)")
		qFilterParam = append(qFilterParam, param.ExcludeStatuses)
	}
	if len(param.TradeTypes) > 0 {
		qFilter = append(qFilter, "trades.trade_type IN (?)")
		qFilterParam = append(qFilterParam, param.TradeTypes)
	}
	if len(param.ExcludeTypes) > 0 {
		qFilter = append(qFilter, "trades.trade_type NOT IN (?)")
		qFilterParam = append(qFilterParam, param.ExcludeTypes)
	}
	if param.StartDate != nil {
		qFilter = append(qFilter, "trades.trade_date >= ?")
		qFilterParam = append(qFilterParam, *param.StartDate)
	}
	if param.EndDate != nil {
		qFilter = append(qFilter, "trades.trade_date <= ?")
		qFilterParam = append(qFilterParam, *param.EndDate)
	}

	db := utils.ApplyOptions(r.db, opts...).WithContext(ctx).Model(&model.Trade{})
	if len(qFilter) > 0 {
		db = db.Where(strings.Join(qFilter, " AND "), qFilterParam...)
	}
	return db
}

func (r *tradeRepository) Get(ctx context.Context, param dto.GetTradesParam, opts ...utils.DBOption) ([]model.Trade, error) {
	var trades []model.Trade
	db := r.filtered(ctx, param, opts...).Preload("Ticker")
	if param.OrderBy != "" {
		db = db.Order(param.OrderBy)
	}
	if err := db.Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

func (r *tradeRepository) GetByID(ctx context.Context, id uint) (*model.Trade, error) {
	var trade model.Trade
	if err := r.db.WithContext(ctx).Preload("Ticker").First(&trade, id).Error; err != nil {
		return nil, err
	}
	return &trade, nil
}

func (r *tradeRepository) Create(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db, opts...).WithContext(ctx).Create(trade).Error
}

// Update writes every column so cleared derived fields (a risk capital that
// no longer applies, say) go back to NULL instead of sticking around.
func (r *tradeRepository) Update(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db, opts...).WithContext(ctx).
		Model(trade).Select("*").Omit("created_at").Updates(trade).Error
}

func (r *tradeRepository) UpdateColumns(ctx context.Context, id uint, values map[string]interface{}, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db, opts...).WithContext(ctx).
		Model(&model.Trade{}).Where("id = ?", id).Updates(values).Error
}

func (r *tradeRepository) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db, opts...).WithContext(ctx).Delete(&model.Trade{}, id).Error
}

func (r *tradeRepository) InsertStatusHistory(ctx context.Context, history *model.TradeStatusHistory, opts ...utils.DBOption) error {
	return utils.ApplyOptions(r.db, opts...).WithContext(ctx).Create(history).Error
}

// ExpireOpenPast marks open option trades whose expiration date is strictly
// before the cutoff as expired. Returns the number of trades flipped.
func (r *tradeRepository) ExpireOpenPast(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Trade{}).
		Where("status = ?", dto.StatusOpen).
		Where("trade_type NOT IN (?)", []string{dto.TradeTypeBTO, dto.TradeTypeSTC}).
		Where("expiration_date < ?", cutoff.Format("2006-01-02")).
		Update("status", dto.StatusExpired)
	return res.RowsAffected, res.Error
}

// SumPremiums totals signed total_premium over the filtered trades: SELL
// rows add, everything else subtracts. Matches the bankroll panel's premium
// line.
func (r *tradeRepository) SumPremiums(ctx context.Context, param dto.GetTradesParam) (float64, error) {
	var total *float64
	err := r.filtered(ctx, param).
		Select("SUM(CASE WHEN trade_type = 'SELL' THEN credit_debit ELSE -credit_debit END)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *tradeRepository) SumMarginCapital(ctx context.Context, param dto.GetTradesParam) (float64, error) {
	var total *float64
	err := r.filtered(ctx, param).
		Select("SUM(margin_capital)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func (r *tradeRepository) MarginBreakdown(ctx context.Context, param dto.GetTradesParam) (map[string]dto.BankrollBucket, error) {
	type row struct {
		TradeType     string
		Count         int
		MarginCapital *float64
	}
	var rows []row
	err := r.filtered(ctx, param).
		Select("trade_type, COUNT(*) AS count, SUM(margin_capital) AS margin_capital").
		Group("trade_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]dto.BankrollBucket, len(rows))
	for _, rw := range rows {
		var mc float64
		if rw.MarginCapital != nil {
			mc = *rw.MarginCapital
		}
		breakdown[rw.TradeType] = dto.BankrollBucket{Count: rw.Count, MarginCapital: mc}
	}
	return breakdown, nil
}

func (r *tradeRepository) DailyPremiums(ctx context.Context, param dto.GetTradesParam) ([]dto.ChartPoint, error) {
	type row struct {
		TradeDate    time.Time
		DailyPremium float64
	}
	var rows []row
	err := r.filtered(ctx, param).
		Select("trade_date, SUM(total_premium) AS daily_premium").
		Group("trade_date").
		Order("trade_date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	points := make([]dto.ChartPoint, 0, len(rows))
	for _, rw := range rows {
		points = append(points, dto.ChartPoint{
			Date:    fmt.Sprintf("%02d/%02d", rw.TradeDate.Month(), rw.TradeDate.Day()),
			Premium: rw.DailyPremium,
		})
	}
	return points, nil
}

func (r *tradeRepository) TopSymbols(ctx context.Context, limit int) ([]dto.TopSymbol, error) {
	type row struct {
		Ticker                  string
		TradeCount              int
		HasOpenTrades           int
		LastAssignedExpiredDate *time.Time
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Ticker{}).
		Select(`tickers.ticker,
			COUNT(trades.id) AS trade_count,
			MAX(CASE WHEN trades.status = 'open' THEN 1 ELSE 0 END) AS has_open_trades,
			MAX(CASE WHEN trades.status IN ('assigned', 'expired') THEN trades.trade_date ELSE NULL END) AS last_assigned_expired_date`).
		Joins("JOIN trades ON tickers.id = trades.ticker_id").
		Where("tickers.ticker IS NOT NULL AND tickers.ticker != ''").
		Group("tickers.ticker").
		Order("trade_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	symbols := make([]dto.TopSymbol, 0, len(rows))
	for _, rw := range rows {
		stale := rw.LastAssignedExpiredDate != nil && rw.LastAssignedExpiredDate.Before(thirtyDaysAgo)
		symbols = append(symbols, dto.TopSymbol{
			Ticker:               rw.Ticker,
			TradeCount:           rw.TradeCount,
			HasOpenTrades:        rw.HasOpenTrades == 1,
			IsOldAssignedExpired: stale,
		})
	}
	return symbols, nil
}
