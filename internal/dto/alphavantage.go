package dto

// SymbolSearchResponse mirrors the Alpha Vantage SYMBOL_SEARCH payload. The
// field keys really are numbered like this.
type SymbolSearchResponse struct {
	BestMatches  []SymbolMatch `json:"bestMatches"`
	ErrorMessage string        `json:"Error Message"`
	Note         string        `json:"Note"`
}

type SymbolMatch struct {
	Symbol string `json:"1. symbol"`
	Name   string `json:"2. name"`
	Type   string `json:"3. type"`
	Region string `json:"4. region"`
}

type CompanyInfo struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
