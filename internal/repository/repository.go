package repository

import (
	"options-tracker/config"
	"options-tracker/pkg/cache"
	"options-tracker/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	AccountRepo      AccountRepository
	TickerRepo       TickerRepository
	TradeRepo        TradeRepository
	TradeTypeRepo    TradeTypeRepository
	CostBasisRepo    CostBasisRepository
	CashFlowRepo     CashFlowRepository
	CommissionRepo   CommissionRepository
	SymbolSearchRepo SymbolSearchRepository
	UnitOfWork       UnitOfWork
}

func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	return &Repository{
		AccountRepo:      NewAccountRepository(db),
		TickerRepo:       NewTickerRepository(db),
		TradeRepo:        NewTradeRepository(db),
		TradeTypeRepo:    NewTradeTypeRepository(db),
		CostBasisRepo:    NewCostBasisRepository(db),
		CashFlowRepo:     NewCashFlowRepository(db),
		CommissionRepo:   NewCommissionRepository(cfg, inmemoryCache, db),
		SymbolSearchRepo: NewAlphaVantageRepository(cfg, log),
		UnitOfWork:       NewUnitOfWork(db),
	}, nil
}
