package service

import (
	"context"
	"options-tracker/internal/dto"
	"options-tracker/internal/repository"
	"options-tracker/pkg/logger"
	"options-tracker/pkg/utils"
	"time"
)

const topSymbolLimit = 10

// Stock legs never count toward premium performance numbers.
var summaryExcludedTypes = []string{dto.TradeTypeBTO, dto.TradeTypeSTC}

type SummaryService interface {
	Summary(ctx context.Context, param dto.GetSummaryParam) (*dto.SummaryResponse, error)
	ChartData(ctx context.Context, param dto.GetSummaryParam) ([]dto.ChartPoint, error)
	TopSymbols(ctx context.Context) ([]dto.TopSymbol, error)
}

type summaryService struct {
	logger *logger.Logger
	repo   *repository.Repository
	now    func() time.Time
}

func NewSummaryService(log *logger.Logger, repo *repository.Repository) SummaryService {
	return &summaryService{logger: log, repo: repo, now: time.Now}
}

// Summary aggregates option-trade performance: counts, win rate over
// completed trades, total collected premium, and how far through the year we
// are. A completed trade is a win when its premium was kept (positive).
func (s *summaryService) Summary(ctx context.Context, param dto.GetSummaryParam) (*dto.SummaryResponse, error) {
	trades, err := s.repo.TradeRepo.Get(ctx, dto.GetTradesParam{
		ExcludeStatuses: []string{dto.StatusRoll},
		ExcludeTypes:    summaryExcludedTypes,
		StartDate:       param.StartDate,
		EndDate:         param.EndDate,
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.SummaryResponse{TotalTrades: len(trades)}

	completed := 0
	for _, trade := range trades {
		resp.TotalNetCredit += trade.TotalPremium

		switch trade.Status {
		case dto.StatusOpen:
			resp.OpenTrades++
		case dto.StatusClosed, dto.StatusExpired, dto.StatusAssigned:
			resp.ClosedTrades++
			completed++
			if trade.TotalPremium > 0 {
				resp.Wins++
			} else if trade.TotalPremium < 0 {
				resp.Losses++
			}
		}
	}
	if completed > 0 {
		resp.WinningPercentage = utils.RoundRate(float64(resp.Wins) / float64(completed) * 100)
	}
	resp.TotalNetCredit = utils.RoundCurrency(resp.TotalNetCredit)

	today := s.now()
	yearStart := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())
	yearEnd := time.Date(today.Year(), 12, 31, 0, 0, 0, 0, today.Location())
	resp.DaysDone = utils.CalendarDaysBetween(yearStart, today)
	resp.DaysRemaining = utils.CalendarDaysBetween(today, yearEnd)

	return resp, nil
}

func (s *summaryService) ChartData(ctx context.Context, param dto.GetSummaryParam) ([]dto.ChartPoint, error) {
	return s.repo.TradeRepo.DailyPremiums(ctx, dto.GetTradesParam{
		ExcludeTypes: summaryExcludedTypes,
		StartDate:    param.StartDate,
		EndDate:      param.EndDate,
	})
}

func (s *summaryService) TopSymbols(ctx context.Context) ([]dto.TopSymbol, error) {
	return s.repo.TradeRepo.TopSymbols(ctx, topSymbolLimit)
}
