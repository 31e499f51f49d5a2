package platform

import "github.com/shopspring/decimal"

// User is the authenticated principal from GET /api/auth/user.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	TenantID string `json:"tenantId"`
	Role     string `json:"role"`
}

// ReportLine is one labeled amount in a financial statement.
type ReportLine struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// FinancialReport is the shape shared by the profit-loss, balance-sheet and
// cash-flow endpoints.
type FinancialReport struct {
	ReportType string          `json:"reportType"`
	Period     string          `json:"period"`
	Lines      []ReportLine    `json:"lines"`
	Total      decimal.Decimal `json:"total"`
}

// GenerateResult reports the outcome of POST /api/journal-entries/generate.
type GenerateResult struct {
	Generated int    `json:"generated"`
	Period    string `json:"period"`
}

type reportRequest struct {
	Period string `json:"period"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
