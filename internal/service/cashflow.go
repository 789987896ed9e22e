package service

import (
	"context"
	"fmt"
	"options-tracker/internal/dto"
	"options-tracker/internal/model"
	"options-tracker/internal/repository"
	"options-tracker/pkg/logger"
	"options-tracker/pkg/utils"
)

type CashFlowService interface {
	List(ctx context.Context, param dto.GetCashFlowsParam) ([]dto.CashFlowResponse, error)
	Create(ctx context.Context, req dto.CreateCashFlowRequest) error
	BankrollSummary(ctx context.Context, param dto.GetBankrollSummaryParam) (*dto.BankrollSummary, error)
}

type cashFlowService struct {
	logger *logger.Logger
	repo   *repository.Repository
}

func NewCashFlowService(log *logger.Logger, repo *repository.Repository) CashFlowService {
	return &cashFlowService{logger: log, repo: repo}
}

func (s *cashFlowService) List(ctx context.Context, param dto.GetCashFlowsParam) ([]dto.CashFlowResponse, error) {
	return s.repo.CashFlowRepo.GetJoined(ctx, param)
}

func (s *cashFlowService) Create(ctx context.Context, req dto.CreateCashFlowRequest) error {
	transactionDate, err := utils.ParseTradeDate(req.TransactionDate)
	if err != nil {
		return fmt.Errorf("transaction_date: %w", err)
	}
	if _, err := s.repo.AccountRepo.GetByID(ctx, req.AccountID); err != nil {
		return fmt.Errorf("account %d: %w", req.AccountID, err)
	}

	return s.repo.CashFlowRepo.Create(ctx, &model.CashFlow{
		AccountID:       req.AccountID,
		TransactionDate: transactionDate,
		TransactionType: req.TransactionType,
		Amount:          utils.RoundCurrency(req.Amount),
		Description:     req.Description,
		TradeID:         req.TradeID,
		TickerID:        req.TickerID,
	})
}

// BankrollSummary is the capital panel: starting balance plus signed premium
// over non-roll trades, less margin capital locked in open/assigned option
// positions. The status filter narrows the locked-capital side only.
func (s *cashFlowService) BankrollSummary(ctx context.Context, param dto.GetBankrollSummaryParam) (*dto.BankrollSummary, error) {
	account, err := s.repo.AccountRepo.GetByID(ctx, param.AccountID)
	if err != nil {
		return nil, fmt.Errorf("account %d: %w", param.AccountID, err)
	}

	premiumParam := dto.GetTradesParam{
		AccountID:       &param.AccountID,
		ExcludeStatuses: []string{dto.StatusRoll},
		StartDate:       param.StartDate,
		EndDate:         param.EndDate,
	}
	totalPremiums, err := s.repo.TradeRepo.SumPremiums(ctx, premiumParam)
	if err != nil {
		return nil, err
	}

	marginParam := dto.GetTradesParam{
		AccountID:       &param.AccountID,
		Statuses:        marginStatuses(param.StatusFilter),
		ExcludeStatuses: []string{dto.StatusRoll},
		ExcludeTypes:    []string{dto.TradeTypeBTO, dto.TradeTypeSTC},
		StartDate:       param.StartDate,
		EndDate:         param.EndDate,
	}
	usedInTrades, err := s.repo.TradeRepo.SumMarginCapital(ctx, marginParam)
	if err != nil {
		return nil, err
	}
	breakdown, err := s.repo.TradeRepo.MarginBreakdown(ctx, marginParam)
	if err != nil {
		return nil, err
	}

	totalBankroll := account.StartingBalance + totalPremiums
	return &dto.BankrollSummary{
		TotalDeposits: account.StartingBalance,
		TotalPremiums: totalPremiums,
		TotalBankroll: totalBankroll,
		UsedInTrades:  usedInTrades,
		Available:     totalBankroll - usedInTrades,
		Breakdown:     breakdown,
	}, nil
}

func marginStatuses(statusFilter *string) []string {
	if statusFilter == nil {
		return []string{dto.StatusOpen, dto.StatusAssigned}
	}
	switch *statusFilter {
	case "open":
		return []string{dto.StatusOpen}
	case "completed":
		return []string{dto.StatusClosed}
	case "assigned":
		return []string{dto.StatusAssigned}
	default:
		return []string{dto.StatusOpen, dto.StatusAssigned}
	}
}
