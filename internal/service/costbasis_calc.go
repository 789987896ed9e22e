package service

import (
	"fmt"
	"options-tracker/internal/dto"
	"options-tracker/internal/model"
	"options-tracker/pkg/utils"
	"sort"
	"time"
)

// ledgerEvent is one contribution of a trade to the cost basis ledger. An
// option trade contributes its opening sell; an assigned option trade
// additionally contributes the share purchase/delivery at expiration.
type ledgerEvent struct {
	date         time.Time
	tradeID      uint
	seq          int // opening event 0, assignment event 1
	description  string
	shares       int
	costPerShare float64
	amount       float64
}

// BuildCostBasisLedger reduces the trade set of one (ticker, account) pair
// into its ledger rows. It is a pure function over the snapshot: no I/O, no
// mutation of the input.
//
// Ordering is transaction_date ascending with ties broken by trade id (and,
// within one trade, opening before assignment), so the reduction is
// deterministic regardless of input order. Each row's running basis is the
// previous running basis plus the row's signed amount. basis_per_share is
// running_basis / running_shares; when the share count is zero the running
// basis itself is carried, matching how assignment later "absorbs" the
// collected premium into the share cost.
func BuildCostBasisLedger(trades []model.Trade) ([]model.CostBasisEntry, error) {
	events := make([]ledgerEvent, 0, len(trades))

	for _, trade := range trades {
		if trade.TradeDate.IsZero() {
			return nil, fmt.Errorf("trade %d has no trade date, refusing to order ledger", trade.ID)
		}

		event, err := openingEvent(trade)
		if err != nil {
			return nil, err
		}
		events = append(events, event)

		if trade.Status == dto.StatusAssigned && dto.IsOptionType(trade.TradeType) {
			assignment, err := assignmentEvent(trade)
			if err != nil {
				return nil, err
			}
			events = append(events, assignment)
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].date.Equal(events[j].date) {
			return events[i].date.Before(events[j].date)
		}
		if events[i].tradeID != events[j].tradeID {
			return events[i].tradeID < events[j].tradeID
		}
		return events[i].seq < events[j].seq
	})

	entries := make([]model.CostBasisEntry, 0, len(events))
	runningBasis := 0.0
	runningShares := 0

	for _, event := range events {
		runningBasis = utils.RoundCurrency(runningBasis + event.amount)
		runningShares += event.shares

		basisPerShare := runningBasis
		if runningShares != 0 {
			basisPerShare = utils.RoundCurrency(runningBasis / float64(runningShares))
		}

		tradeID := event.tradeID
		entries = append(entries, model.CostBasisEntry{
			TradeID:         &tradeID,
			TransactionDate: event.date,
			Description:     event.description,
			Shares:          event.shares,
			CostPerShare:    event.costPerShare,
			TotalAmount:     utils.RoundCurrency(event.amount),
			RunningBasis:    runningBasis,
			RunningShares:   runningShares,
			BasisPerShare:   basisPerShare,
		})
	}

	return entries, nil
}

func openingEvent(trade model.Trade) (ledgerEvent, error) {
	symbol := trade.Ticker.Ticker

	if dto.IsStockType(trade.TradeType) {
		amount := trade.CreditDebit * float64(trade.NumOfContracts)
		shares := trade.NumOfContracts
		if trade.TradeType == dto.TradeTypeSTC {
			// Proceeds from a sale reduce the basis.
			amount = -absFloat(amount)
			shares = -shares
		}
		return ledgerEvent{
			date:         trade.TradeDate,
			tradeID:      trade.ID,
			seq:          0,
			description:  fmt.Sprintf("%s %d %s", trade.TradeType, trade.NumOfContracts, symbol),
			shares:       shares,
			costPerShare: trade.CreditDebit,
			amount:       amount,
		}, nil
	}

	if trade.ExpirationDate.IsZero() {
		return ledgerEvent{}, fmt.Errorf("option trade %d has no expiration date", trade.ID)
	}

	side := trade.TradeType
	switch {
	case dto.IsPutStyle(trade.TradeType):
		side = "PUT"
	case dto.IsCallStyle(trade.TradeType):
		side = "CALL"
	}

	// Premium received: money in, basis down. Contracts never move shares.
	amount := -(trade.CreditDebit * float64(trade.NumOfContracts) * dto.SharesPerContract)
	return ledgerEvent{
		date:    trade.TradeDate,
		tradeID: trade.ID,
		seq:     0,
		description: fmt.Sprintf("SELL -%d %s 100 %s %v %s @%v",
			trade.NumOfContracts, symbol, utils.FormatOptionExpiry(trade.ExpirationDate),
			trade.StrikePrice, side, trade.CreditDebit),
		shares:       0,
		costPerShare: 0,
		amount:       amount,
	}, nil
}

func assignmentEvent(trade model.Trade) (ledgerEvent, error) {
	if trade.ExpirationDate.IsZero() {
		return ledgerEvent{}, fmt.Errorf("assigned trade %d has no expiration date", trade.ID)
	}

	numShares := trade.NumOfContracts * dto.SharesPerContract
	expiry := utils.FormatOptionExpiry(trade.ExpirationDate)

	if dto.IsPutStyle(trade.TradeType) {
		// Put assignment buys the shares at strike.
		return ledgerEvent{
			date:         trade.ExpirationDate,
			tradeID:      trade.ID,
			seq:          1,
			description:  fmt.Sprintf("ASSIGNED %s PUT", expiry),
			shares:       numShares,
			costPerShare: trade.StrikePrice,
			amount:       trade.StrikePrice * float64(numShares),
		}, nil
	}

	// Call assignment delivers the shares at strike.
	return ledgerEvent{
		date:         trade.ExpirationDate,
		tradeID:      trade.ID,
		seq:          1,
		description:  fmt.Sprintf("ASSIGNED %s CALL", expiry),
		shares:       -numShares,
		costPerShare: trade.StrikePrice,
		amount:       -(trade.StrikePrice * float64(numShares)),
	}, nil
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
