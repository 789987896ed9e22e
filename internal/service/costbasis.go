package service

import (
	"context"
	"options-tracker/internal/dto"
	"options-tracker/internal/repository"
	"options-tracker/pkg/logger"
	"options-tracker/pkg/utils"
)

type CostBasisService interface {
	Report(ctx context.Context, param dto.GetCostBasisParam) ([]dto.TickerCostBasis, error)
	Rebuild(ctx context.Context, tickerID, accountID uint, opts ...utils.DBOption) error
	RebuildAll(ctx context.Context) (int, error)
}

type costBasisService struct {
	logger *logger.Logger
	repo   *repository.Repository
}

func NewCostBasisService(log *logger.Logger, repo *repository.Repository) CostBasisService {
	return &costBasisService{logger: log, repo: repo}
}

// Rebuild recomputes one (ticker, account) ledger from its trades and swaps
// it in. Callers mutating trades pass their transaction option so the trade
// change and the ledger swap commit together.
//
// Trades with status "roll" are superseded legs of a roll chain; the
// replacement leg carries the chain's economics, so they contribute no rows.
func (s *costBasisService) Rebuild(ctx context.Context, tickerID, accountID uint, opts ...utils.DBOption) error {
	trades, err := s.repo.TradeRepo.Get(ctx, dto.GetTradesParam{
		AccountID:       &accountID,
		TickerID:        &tickerID,
		ExcludeStatuses: []string{dto.StatusRoll},
	}, opts...)
	if err != nil {
		return err
	}

	entries, err := BuildCostBasisLedger(trades)
	if err != nil {
		return err
	}
	for i := range entries {
		entries[i].TickerID = tickerID
		entries[i].AccountID = accountID
	}

	return s.repo.CostBasisRepo.Replace(ctx, tickerID, accountID, entries, opts...)
}

// RebuildAll recomputes every ledger, one (ticker, account) pair per
// transaction. Returns the number of pairs rebuilt.
func (s *costBasisService) RebuildAll(ctx context.Context) (int, error) {
	pairs, err := s.repo.CostBasisRepo.TickerAccountPairs(ctx)
	if err != nil {
		return 0, err
	}

	for _, pair := range pairs {
		tickerID, accountID := pair[0], pair[1]
		err := s.repo.UnitOfWork.Run(func(opts ...utils.DBOption) error {
			return s.Rebuild(ctx, tickerID, accountID, opts...)
		})
		if err != nil {
			return 0, err
		}
	}

	s.logger.InfoContext(ctx, "rebuilt cost basis ledgers", logger.IntField("pairs", len(pairs)))
	return len(pairs), nil
}

// Report groups ledger rows per ticker. The group totals are whatever the
// chronologically last row carries, since running columns already accumulate.
func (s *costBasisService) Report(ctx context.Context, param dto.GetCostBasisParam) ([]dto.TickerCostBasis, error) {
	rows, err := s.repo.CostBasisRepo.GetJoined(ctx, param)
	if err != nil {
		return nil, err
	}

	grouped := make([]dto.TickerCostBasis, 0)
	index := make(map[string]int)

	for _, row := range rows {
		i, ok := index[row.Ticker]
		if !ok {
			grouped = append(grouped, dto.TickerCostBasis{
				Ticker:      row.Ticker,
				CompanyName: row.CompanyName,
			})
			i = len(grouped) - 1
			index[row.Ticker] = i
		}

		grouped[i].Trades = append(grouped[i].Trades, dto.CostBasisRow{
			ID:                   row.ID,
			TradeDate:            row.TransactionDate,
			TradeDescription:     row.Description,
			Shares:               row.Shares,
			CostPerShare:         row.CostPerShare,
			Amount:               row.TotalAmount,
			RunningBasis:         row.RunningBasis,
			RunningBasisPerShare: row.BasisPerShare,
			RunningShares:        row.RunningShares,
			Status:               row.Status,
		})

		// Rows arrive date-ascending, so the last one wins.
		grouped[i].TotalShares = row.RunningShares
		grouped[i].TotalCostBasis = row.RunningBasis
		grouped[i].TotalCostBasisPerShare = row.BasisPerShare
	}

	return grouped, nil
}
