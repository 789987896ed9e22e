package service

import (
	"options-tracker/config"
	"options-tracker/internal/repository"
	"options-tracker/pkg/cache"
	"options-tracker/pkg/logger"
)

type Service struct {
	TradeService     TradeService
	CostBasisService CostBasisService
	CashFlowService  CashFlowService
	SummaryService   SummaryService
	TickerService    TickerService
	AccountService   AccountService
	Sweeper          *ExpirationSweeper
}

func NewService(cfg *config.Config, log *logger.Logger, repo *repository.Repository, inmemoryCache cache.Cache) *Service {
	costBasisService := NewCostBasisService(log, repo)

	return &Service{
		TradeService:     NewTradeService(log, repo, costBasisService),
		CostBasisService: costBasisService,
		CashFlowService:  NewCashFlowService(log, repo),
		SummaryService:   NewSummaryService(log, repo),
		TickerService:    NewTickerService(cfg, log, repo, inmemoryCache),
		AccountService:   NewAccountService(log, repo),
		Sweeper:          NewExpirationSweeper(cfg, log, repo),
	}
}
