package service

import (
	"context"
	"errors"
	"fmt"
	"options-tracker/config"
	"options-tracker/internal/dto"
	"options-tracker/internal/repository"
	"options-tracker/pkg/cache"
	"options-tracker/pkg/logger"
	"strings"

	"gorm.io/gorm"
)

type TickerService interface {
	SearchSymbols(ctx context.Context, keywords string) ([]dto.SymbolMatch, error)
	CompanyInfo(ctx context.Context, symbol string) (*dto.CompanyInfo, error)
}

type tickerService struct {
	cfg           *config.Config
	logger        *logger.Logger
	repo          *repository.Repository
	inmemoryCache cache.Cache
}

func NewTickerService(cfg *config.Config, log *logger.Logger, repo *repository.Repository, inmemoryCache cache.Cache) TickerService {
	return &tickerService{cfg: cfg, logger: log, repo: repo, inmemoryCache: inmemoryCache}
}

func (s *tickerService) SearchSymbols(ctx context.Context, keywords string) ([]dto.SymbolMatch, error) {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		return []dto.SymbolMatch{}, nil
	}

	key := fmt.Sprintf("symbol_search:%s", strings.ToUpper(keywords))
	if matches, found := cache.GetFromCache[[]dto.SymbolMatch](s.inmemoryCache, key); found {
		return matches, nil
	}

	matches, err := s.repo.SymbolSearchRepo.Search(ctx, keywords)
	if err != nil {
		return nil, err
	}
	if max := s.cfg.AlphaVantage.MaxSearchResults; max > 0 && len(matches) > max {
		matches = matches[:max]
	}

	s.inmemoryCache.Set(key, matches, s.cfg.Cache.DefaultExpiration)
	return matches, nil
}

// CompanyInfo resolves a symbol to its company name. The ticker table acts as
// the durable cache: a name learned from Alpha Vantage is written back so the
// next lookup never leaves the database. Lookup failures degrade to the
// symbol itself rather than erroring, since the name is cosmetic.
func (s *tickerService) CompanyInfo(ctx context.Context, symbol string) (*dto.CompanyInfo, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	key := fmt.Sprintf("company:%s", symbol)
	if info, found := cache.GetFromCache[dto.CompanyInfo](s.inmemoryCache, key); found {
		return &info, nil
	}

	ticker, err := s.repo.TickerRepo.GetBySymbol(ctx, symbol)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if ticker != nil && ticker.CompanyName != "" && ticker.CompanyName != ticker.Ticker {
		info := dto.CompanyInfo{Symbol: symbol, Name: ticker.CompanyName}
		s.inmemoryCache.Set(key, info, s.cfg.Cache.CompanyExpiration)
		return &info, nil
	}

	info := dto.CompanyInfo{Symbol: symbol, Name: symbol}
	matches, err := s.repo.SymbolSearchRepo.Search(ctx, symbol)
	if err != nil {
		s.logger.WarnContext(ctx, "company name lookup failed, falling back to symbol",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err),
		)
		return &info, nil
	}

	for _, match := range matches {
		if strings.EqualFold(match.Symbol, symbol) {
			info.Name = match.Name
			break
		}
	}

	if info.Name != symbol {
		if err := s.repo.TickerRepo.UpdateCompanyName(ctx, symbol, info.Name); err != nil {
			s.logger.WarnContext(ctx, "failed to persist company name",
				logger.StringField("symbol", symbol),
				logger.ErrorField(err),
			)
		}
	}

	s.inmemoryCache.Set(key, info, s.cfg.Cache.CompanyExpiration)
	return &info, nil
}
