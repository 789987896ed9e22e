package repository

import (
	"context"
	"fmt"
	"options-tracker/config"
	"options-tracker/internal/dto"
	"options-tracker/pkg/httpclient"
	"options-tracker/pkg/logger"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrSymbolSearchRateLimited = fmt.Errorf("symbol search rate limit exceeded")
)

type SymbolSearchRepository interface {
	Search(ctx context.Context, keywords string) ([]dto.SymbolMatch, error)
}

// alphaVantageRepository resolves tickers to company names via the Alpha
// Vantage SYMBOL_SEARCH API. The free tier allows a handful of requests per
// minute, so calls go through a local limiter before hitting the network.
type alphaVantageRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

func NewAlphaVantageRepository(cfg *config.Config, log *logger.Logger) SymbolSearchRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.AlphaVantage.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &alphaVantageRepository{
		httpClient:     httpclient.New(cfg.AlphaVantage.BaseURL, cfg.AlphaVantage.Timeout),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *alphaVantageRepository) Search(ctx context.Context, keywords string) ([]dto.SymbolMatch, error) {
	if r.cfg.AlphaVantage.APIKey == "" {
		return nil, fmt.Errorf("alpha vantage API key not configured")
	}

	if !r.requestLimiter.Allow() {
		r.logger.WarnContext(ctx, "Alpha Vantage request limit reached, waiting",
			logger.IntField("max_request_per_minute", r.cfg.AlphaVantage.MaxRequestPerMinute),
		)
	}
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	queryParams := map[string]string{
		"function": "SYMBOL_SEARCH",
		"keywords": keywords,
		"apikey":   r.cfg.AlphaVantage.APIKey,
	}

	var result dto.SymbolSearchResponse
	resp, err := r.httpClient.Get(ctx, "/query", queryParams, nil, &result)
	if err != nil {
		return nil, fmt.Errorf("symbol search request failed: %w", err)
	}
	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("symbol search returned status %d", resp.StatusCode)
	}
	if result.ErrorMessage != "" {
		return nil, fmt.Errorf("symbol search error: %s", result.ErrorMessage)
	}
	if result.Note != "" {
		// The API answers 200 with a "Note" body when throttling.
		return nil, ErrSymbolSearchRateLimited
	}

	return result.BestMatches, nil
}
