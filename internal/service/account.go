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

type AccountService interface {
	List(ctx context.Context) ([]model.Account, error)
	Create(ctx context.Context, req dto.CreateAccountRequest) (*model.Account, error)
	ListCommissions(ctx context.Context, accountID uint) ([]dto.CommissionResponse, error)
	CreateCommission(ctx context.Context, req dto.CreateCommissionRequest) error
}

type accountService struct {
	logger *logger.Logger
	repo   *repository.Repository
}

func NewAccountService(log *logger.Logger, repo *repository.Repository) AccountService {
	return &accountService{logger: log, repo: repo}
}

func (s *accountService) List(ctx context.Context) ([]model.Account, error) {
	return s.repo.AccountRepo.Get(ctx)
}

func (s *accountService) Create(ctx context.Context, req dto.CreateAccountRequest) (*model.Account, error) {
	account := &model.Account{
		AccountName:     req.AccountName,
		AccountType:     req.AccountType,
		StartingBalance: utils.RoundCurrency(req.StartingBalance),
	}
	if account.AccountType == "" {
		account.AccountType = "PRIMARY"
	}
	if req.StartDate != nil {
		startDate, err := utils.ParseTradeDate(*req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("start_date: %w", err)
		}
		account.StartDate = &startDate
	}

	if err := s.repo.AccountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "account created",
		logger.StringField("account_name", account.AccountName))
	return account, nil
}

func (s *accountService) ListCommissions(ctx context.Context, accountID uint) ([]dto.CommissionResponse, error) {
	return s.repo.CommissionRepo.GetJoined(ctx, accountID)
}

func (s *accountService) CreateCommission(ctx context.Context, req dto.CreateCommissionRequest) error {
	effectiveDate, err := utils.ParseTradeDate(req.EffectiveDate)
	if err != nil {
		return fmt.Errorf("effective_date: %w", err)
	}
	if _, err := s.repo.AccountRepo.GetByID(ctx, req.AccountID); err != nil {
		return fmt.Errorf("account %d: %w", req.AccountID, err)
	}

	return s.repo.CommissionRepo.Create(ctx, &model.Commission{
		AccountID:      req.AccountID,
		CommissionRate: req.CommissionRate,
		EffectiveDate:  effectiveDate,
		Notes:          req.Notes,
	})
}
