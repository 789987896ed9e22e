package service

import (
	"context"
	"errors"
	"fmt"
	"options-tracker/internal/dto"
	"options-tracker/internal/model"
	"options-tracker/internal/repository"
	"options-tracker/pkg/logger"
	"options-tracker/pkg/utils"

	"gorm.io/gorm"
)

var (
	ErrTradeNotFound  = errors.New("trade not found")
	ErrInvalidStatus  = errors.New("invalid trade status")
	ErrFieldNotViable = errors.New("field is not editable")
)

type TradeService interface {
	List(ctx context.Context, param dto.GetTradesParam) ([]dto.TradeResponse, error)
	Get(ctx context.Context, id uint) (*dto.TradeResponse, error)
	Create(ctx context.Context, req dto.CreateTradeRequest) (*dto.TradeResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateTradeRequest) (*dto.TradeResponse, error)
	UpdateField(ctx context.Context, id uint, req dto.UpdateTradeFieldRequest) (*dto.TradeResponse, error)
	UpdateStatus(ctx context.Context, id uint, newStatus string) error
	Delete(ctx context.Context, id uint) error
	Roll(ctx context.Context, id uint, req dto.CreateTradeRequest) (*dto.TradeResponse, error)
	TradeTypes(ctx context.Context) ([]model.TradeType, error)
}

type tradeService struct {
	logger    *logger.Logger
	repo      *repository.Repository
	costBasis CostBasisService
}

func NewTradeService(log *logger.Logger, repo *repository.Repository, costBasis CostBasisService) TradeService {
	return &tradeService{logger: log, repo: repo, costBasis: costBasis}
}

func (s *tradeService) List(ctx context.Context, param dto.GetTradesParam) ([]dto.TradeResponse, error) {
	if param.OrderBy == "" {
		param.OrderBy = "trades.trade_date DESC, trades.id DESC"
	}
	trades, err := s.repo.TradeRepo.Get(ctx, param)
	if err != nil {
		return nil, err
	}

	catalogue, err := s.typeCatalogue(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TradeResponse, 0, len(trades))
	for _, trade := range trades {
		responses = append(responses, s.toResponse(trade, catalogue))
	}
	return responses, nil
}

func (s *tradeService) Get(ctx context.Context, id uint) (*dto.TradeResponse, error) {
	trade, err := s.repo.TradeRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTradeNotFound
	}
	if err != nil {
		return nil, err
	}

	catalogue, err := s.typeCatalogue(ctx)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(*trade, catalogue)
	return &resp, nil
}

// Create inserts the trade with every derived column filled in, records the
// premium cash flow for credit trades, and rebuilds the affected ledger. All
// of it commits or rolls back as one transaction.
func (s *tradeService) Create(ctx context.Context, req dto.CreateTradeRequest) (*dto.TradeResponse, error) {
	var tradeID uint

	err := s.repo.UnitOfWork.Run(func(opts ...utils.DBOption) error {
		trade, err := s.buildTrade(ctx, req, nil, opts...)
		if err != nil {
			return err
		}
		if err := s.repo.TradeRepo.Create(ctx, trade, opts...); err != nil {
			return err
		}
		tradeID = trade.ID

		if err := s.recordPremiumCredit(ctx, trade, opts...); err != nil {
			return err
		}
		return s.costBasis.Rebuild(ctx, trade.TickerID, trade.AccountID, opts...)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "trade created",
		logger.IntField("trade_id", int(tradeID)),
		logger.StringField("ticker", req.Ticker),
		logger.StringField("trade_type", req.TradeType),
	)
	return s.Get(ctx, tradeID)
}

// buildTrade assembles a trade row from the request: ticker resolution,
// commission lookup, derived figures, and catalogue linkage. ROCT types get
// the ticker folded into the stored trade_type, matching how the dashboard
// labels positions.
func (s *tradeService) buildTrade(ctx context.Context, req dto.CreateTradeRequest, parentID *uint, opts ...utils.DBOption) (*model.Trade, error) {
	tradeDate, err := utils.ParseTradeDate(req.TradeDate)
	if err != nil {
		return nil, fmt.Errorf("trade_date: %w", err)
	}
	expirationDate, err := utils.ParseTradeDate(req.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("expiration_date: %w", err)
	}

	ticker, err := s.repo.TickerRepo.GetOrCreate(ctx, req.Ticker, opts...)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.AccountRepo.GetByID(ctx, req.AccountID); err != nil {
		return nil, fmt.Errorf("account %d: %w", req.AccountID, err)
	}

	commissionRate, err := s.repo.CommissionRepo.RateInEffect(ctx, req.AccountID, tradeDate)
	if err != nil {
		return nil, err
	}

	marginPercent := req.MarginPercent
	if marginPercent == 0 {
		marginPercent = 100
	}

	baseType := req.TradeType
	if baseType == "" {
		baseType = dto.TradeTypeROCTPut
	}

	figures, err := DeriveTradeFigures(baseType, tradeDate, expirationDate,
		req.NumOfContracts, req.CreditDebit, req.StrikePrice, marginPercent, commissionRate)
	if err != nil {
		return nil, err
	}

	catalogueType, err := s.repo.TradeTypeRepo.GetByCode(ctx, baseType)
	if err != nil {
		return nil, err
	}
	var tradeTypeID *uint
	if catalogueType != nil {
		tradeTypeID = &catalogueType.ID
	}

	storedType := baseType
	if baseType == dto.TradeTypeROCTPut || baseType == dto.TradeTypeROCTCall {
		storedType = fmt.Sprintf("%s %s", ticker.Ticker, baseType)
	}

	return &model.Trade{
		AccountID:           req.AccountID,
		TickerID:            ticker.ID,
		TradeDate:           tradeDate,
		ExpirationDate:      expirationDate,
		NumOfContracts:      req.NumOfContracts,
		CreditDebit:         req.CreditDebit,
		TotalPremium:        figures.TotalPremium,
		DaysToExpiration:    figures.DaysToExpiration,
		CurrentPrice:        req.CurrentPrice,
		StrikePrice:         utils.RoundCurrency(req.StrikePrice),
		Status:              dto.StatusOpen,
		TradeType:           storedType,
		TradeTypeID:         tradeTypeID,
		CommissionPerShare:  figures.CommissionPerShare,
		NetCreditPerShare:   figures.NetCreditPerShare,
		RiskCapitalPerShare: figures.RiskCapitalPerShare,
		MarginCapital:       figures.MarginCapital,
		MarginPercent:       marginPercent,
		ARORC:               figures.ARORC,
		PricePerShare:       figures.PricePerShare,
		TotalAmount:         figures.TotalAmount,
		TradeParentID:       parentID,
		Ticker:              *ticker,
	}, nil
}

func (s *tradeService) recordPremiumCredit(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	if !dto.IsCreditType(trade.TradeType) {
		return nil
	}
	amount := utils.RoundCurrency(trade.CreditDebit * float64(trade.NumOfContracts) * dto.SharesPerContract)
	return s.repo.CashFlowRepo.Create(ctx, &model.CashFlow{
		AccountID:       trade.AccountID,
		TransactionDate: trade.TradeDate,
		TransactionType: dto.CashFlowPremiumCredit,
		Amount:          amount,
		Description:     fmt.Sprintf("%s premium received", trade.TradeType),
		TradeID:         &trade.ID,
		TickerID:        &trade.TickerID,
	}, opts...)
}

// Update re-derives every dependent column from the merged payload and
// rebuilds the ledgers of both the old and (when the ticker changed) the new
// pair.
func (s *tradeService) Update(ctx context.Context, id uint, req dto.UpdateTradeRequest) (*dto.TradeResponse, error) {
	trade, err := s.repo.TradeRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTradeNotFound
	}
	if err != nil {
		return nil, err
	}

	merged := dto.CreateTradeRequest{
		Ticker:         trade.Ticker.Ticker,
		TradeDate:      trade.TradeDate.Format(utils.DateLayout),
		ExpirationDate: trade.ExpirationDate.Format(utils.DateLayout),
		NumOfContracts: trade.NumOfContracts,
		CreditDebit:    trade.CreditDebit,
		CurrentPrice:   trade.CurrentPrice,
		StrikePrice:    trade.StrikePrice,
		TradeType:      baseTradeType(trade.TradeType, trade.Ticker.Ticker),
		AccountID:      trade.AccountID,
		MarginPercent:  trade.MarginPercent,
	}
	if req.Ticker != nil {
		merged.Ticker = *req.Ticker
	}
	if req.TradeDate != nil {
		merged.TradeDate = *req.TradeDate
	}
	if req.ExpirationDate != nil {
		merged.ExpirationDate = *req.ExpirationDate
	}
	if req.NumOfContracts != nil {
		merged.NumOfContracts = *req.NumOfContracts
	}
	if req.CreditDebit != nil {
		merged.CreditDebit = *req.CreditDebit
	}
	if req.CurrentPrice != nil {
		merged.CurrentPrice = *req.CurrentPrice
	}
	if req.StrikePrice != nil {
		merged.StrikePrice = *req.StrikePrice
	}
	if req.TradeType != nil {
		merged.TradeType = *req.TradeType
	}

	oldTickerID := trade.TickerID

	err = s.repo.UnitOfWork.Run(func(opts ...utils.DBOption) error {
		rebuilt, err := s.buildTrade(ctx, merged, trade.TradeParentID, opts...)
		if err != nil {
			return err
		}
		rebuilt.ID = trade.ID
		rebuilt.Status = trade.Status
		rebuilt.CreatedAt = trade.CreatedAt

		if err := s.repo.TradeRepo.Update(ctx, rebuilt, opts...); err != nil {
			return err
		}

		// Premium cash flow tracks the trade's amounts.
		if err := s.repo.CashFlowRepo.DeleteForTrade(ctx, trade.ID, dto.CashFlowPremiumCredit, opts...); err != nil {
			return err
		}
		if err := s.recordPremiumCredit(ctx, rebuilt, opts...); err != nil {
			return err
		}

		if err := s.costBasis.Rebuild(ctx, rebuilt.TickerID, rebuilt.AccountID, opts...); err != nil {
			return err
		}
		if rebuilt.TickerID != oldTickerID {
			return s.costBasis.Rebuild(ctx, oldTickerID, trade.AccountID, opts...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// UpdateField is the inline-edit path: one whitelisted column. Numeric edits
// go through the full Update so derived columns stay consistent.
func (s *tradeService) UpdateField(ctx context.Context, id uint, req dto.UpdateTradeFieldRequest) (*dto.TradeResponse, error) {
	switch req.Field {
	case "status":
		status, ok := req.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: status must be a string", ErrInvalidStatus)
		}
		if err := s.UpdateStatus(ctx, id, status); err != nil {
			return nil, err
		}
		return s.Get(ctx, id)
	case "num_of_contracts":
		value, err := asFloat(req.Value)
		if err != nil {
			return nil, err
		}
		contracts := int(value)
		return s.Update(ctx, id, dto.UpdateTradeRequest{NumOfContracts: &contracts})
	case "credit_debit":
		value, err := asFloat(req.Value)
		if err != nil {
			return nil, err
		}
		return s.Update(ctx, id, dto.UpdateTradeRequest{CreditDebit: &value})
	case "strike_price":
		value, err := asFloat(req.Value)
		if err != nil {
			return nil, err
		}
		return s.Update(ctx, id, dto.UpdateTradeRequest{StrikePrice: &value})
	default:
		return nil, fmt.Errorf("%w: %s", ErrFieldNotViable, req.Field)
	}
}

// UpdateStatus flips the status, appends the audit row, applies assignment
// side effects, and rebuilds the ledger. Flipping to assigned buys the shares
// (a BUY cash flow); flipping away from assigned reverses that.
func (s *tradeService) UpdateStatus(ctx context.Context, id uint, newStatus string) error {
	if !utils.ContainsString(dto.ValidStatuses(), newStatus) {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}

	trade, err := s.repo.TradeRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTradeNotFound
	}
	if err != nil {
		return err
	}

	oldStatus := trade.Status
	if oldStatus == newStatus {
		return nil
	}

	err = s.repo.UnitOfWork.Run(func(opts ...utils.DBOption) error {
		if err := s.repo.TradeRepo.UpdateColumns(ctx, id,
			map[string]interface{}{"status": newStatus}, opts...); err != nil {
			return err
		}
		if err := s.repo.TradeRepo.InsertStatusHistory(ctx, &model.TradeStatusHistory{
			TradeID:   id,
			OldStatus: &oldStatus,
			NewStatus: newStatus,
		}, opts...); err != nil {
			return err
		}

		if newStatus == dto.StatusAssigned && oldStatus != dto.StatusAssigned {
			if err := s.recordAssignmentBuy(ctx, trade, opts...); err != nil {
				return err
			}
		}
		if oldStatus == dto.StatusAssigned && newStatus != dto.StatusAssigned {
			if err := s.repo.CashFlowRepo.DeleteForTrade(ctx, id, dto.CashFlowBuy, opts...); err != nil {
				return err
			}
		}

		// The ledger derives assignment rows from the status, so a rebuild
		// covers both directions.
		return s.costBasis.Rebuild(ctx, trade.TickerID, trade.AccountID, opts...)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "trade status changed",
		logger.IntField("trade_id", int(id)),
		logger.StringField("old_status", oldStatus),
		logger.StringField("new_status", newStatus),
	)
	return nil
}

func (s *tradeService) recordAssignmentBuy(ctx context.Context, trade *model.Trade, opts ...utils.DBOption) error {
	if !dto.IsOptionType(trade.TradeType) {
		return nil
	}
	shares := trade.NumOfContracts * dto.SharesPerContract
	amount := utils.RoundCurrency(-(trade.StrikePrice * float64(shares)))
	return s.repo.CashFlowRepo.Create(ctx, &model.CashFlow{
		AccountID:       trade.AccountID,
		TransactionDate: trade.TradeDate,
		TransactionType: dto.CashFlowBuy,
		Amount:          amount,
		Description:     fmt.Sprintf("BUY %d %s @ $%v (assigned)", shares, trade.Ticker.Ticker, trade.StrikePrice),
		TradeID:         &trade.ID,
		TickerID:        &trade.TickerID,
	}, opts...)
}

// Delete removes the trade with its dependent cash flows and rebuilds the
// ledger from the survivors.
func (s *tradeService) Delete(ctx context.Context, id uint) error {
	trade, err := s.repo.TradeRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTradeNotFound
	}
	if err != nil {
		return err
	}

	return s.repo.UnitOfWork.Run(func(opts ...utils.DBOption) error {
		if err := s.repo.CashFlowRepo.DeleteForTrade(ctx, id, "", opts...); err != nil {
			return err
		}
		if err := s.repo.CostBasisRepo.DeleteForTrade(ctx, id, opts...); err != nil {
			return err
		}
		if err := s.repo.TradeRepo.Delete(ctx, id, opts...); err != nil {
			return err
		}
		return s.costBasis.Rebuild(ctx, trade.TickerID, trade.AccountID, opts...)
	})
}

// Roll retires the old leg (status "roll") and opens its replacement carrying
// trade_parent_id, in one transaction. The retired leg drops out of summaries
// and the ledger; the new leg's credit carries the chain.
func (s *tradeService) Roll(ctx context.Context, id uint, req dto.CreateTradeRequest) (*dto.TradeResponse, error) {
	oldTrade, err := s.repo.TradeRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTradeNotFound
	}
	if err != nil {
		return nil, err
	}

	var newID uint
	err = s.repo.UnitOfWork.Run(func(opts ...utils.DBOption) error {
		oldStatus := oldTrade.Status
		if err := s.repo.TradeRepo.UpdateColumns(ctx, id,
			map[string]interface{}{"status": dto.StatusRoll}, opts...); err != nil {
			return err
		}
		if err := s.repo.TradeRepo.InsertStatusHistory(ctx, &model.TradeStatusHistory{
			TradeID:   id,
			OldStatus: &oldStatus,
			NewStatus: dto.StatusRoll,
		}, opts...); err != nil {
			return err
		}

		newTrade, err := s.buildTrade(ctx, req, &id, opts...)
		if err != nil {
			return err
		}
		if err := s.repo.TradeRepo.Create(ctx, newTrade, opts...); err != nil {
			return err
		}
		newID = newTrade.ID

		if err := s.recordPremiumCredit(ctx, newTrade, opts...); err != nil {
			return err
		}

		if err := s.costBasis.Rebuild(ctx, newTrade.TickerID, newTrade.AccountID, opts...); err != nil {
			return err
		}
		if newTrade.TickerID != oldTrade.TickerID {
			return s.costBasis.Rebuild(ctx, oldTrade.TickerID, oldTrade.AccountID, opts...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "trade rolled",
		logger.IntField("old_trade_id", int(id)),
		logger.IntField("new_trade_id", int(newID)),
	)
	return s.Get(ctx, newID)
}

func (s *tradeService) TradeTypes(ctx context.Context) ([]model.TradeType, error) {
	return s.repo.TradeTypeRepo.Get(ctx)
}

func (s *tradeService) typeCatalogue(ctx context.Context) (map[uint]model.TradeType, error) {
	types, err := s.repo.TradeTypeRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	catalogue := make(map[uint]model.TradeType, len(types))
	for _, t := range types {
		catalogue[t.ID] = t
	}
	return catalogue, nil
}

func (s *tradeService) toResponse(trade model.Trade, catalogue map[uint]model.TradeType) dto.TradeResponse {
	resp := dto.TradeResponse{
		Trade:       trade,
		Ticker:      trade.Ticker.Ticker,
		CompanyName: trade.Ticker.CompanyName,
		Shares:      dto.TradeShares(trade.TradeType, trade.NumOfContracts),
	}
	if trade.TradeTypeID != nil {
		if t, ok := catalogue[*trade.TradeTypeID]; ok {
			resp.TypeName = &t.TypeName
			resp.TypeCode = &t.TypeCode
		}
	}
	return resp
}

// baseTradeType strips the ticker prefix ROCT trades carry in the stored
// column ("AAPL ROCT PUT" -> "ROCT PUT").
func baseTradeType(storedType, ticker string) string {
	prefix := ticker + " "
	if len(storedType) > len(prefix) && storedType[:len(prefix)] == prefix {
		return storedType[len(prefix):]
	}
	return storedType
}

func asFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", value)
	}
}
