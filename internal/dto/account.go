package dto

type CreateAccountRequest struct {
	AccountName     string  `json:"account_name" validate:"required"`
	AccountType     string  `json:"account_type"`
	StartDate       *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	StartingBalance float64 `json:"starting_balance" validate:"gte=0"`
}

type CommissionResponse struct {
	ID             uint    `json:"id"`
	AccountID      uint    `json:"account_id"`
	AccountName    string  `json:"account_name"`
	CommissionRate float64 `json:"commission_rate"`
	EffectiveDate  string  `json:"effective_date"`
	Notes          string  `json:"notes"`
}

type CreateCommissionRequest struct {
	AccountID      uint    `json:"account_id" validate:"required"`
	CommissionRate float64 `json:"commission_rate" validate:"gte=0"`
	EffectiveDate  string  `json:"effective_date" validate:"required,datetime=2006-01-02"`
	Notes          string  `json:"notes"`
}
