package dto

import (
	"time"

	"github.com/otecpro/otec_erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfitAndLossParams carries the reporting date range.
type ProfitAndLossParams struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

// CashFlowParams carries the projection horizon.
type CashFlowParams struct {
	Days int `form:"days" binding:"omitempty,gte=1,lte=365"`
}

// ExecutionMarginResponse is the margin report for one execution.
type ExecutionMarginResponse struct {
	ExecutionID string          `json:"executionID"`
	CourseName  string          `json:"courseName,omitempty"`
	ClientName  string          `json:"clientName,omitempty"`
	NetIncome   decimal.Decimal `json:"netIncome"`
	DirectCosts decimal.Decimal `json:"directCosts"`
	GrossMargin decimal.Decimal `json:"grossMargin"`
	MarginPct   decimal.Decimal `json:"marginPct"`
}

// ToExecutionMarginResponse converts a domain.ExecutionMargin to its response form.
func ToExecutionMarginResponse(m *domain.ExecutionMargin) ExecutionMarginResponse {
	return ExecutionMarginResponse{
		ExecutionID: m.ExecutionID,
		CourseName:  m.CourseName,
		ClientName:  m.ClientName,
		NetIncome:   m.NetIncome,
		DirectCosts: m.DirectCosts,
		GrossMargin: m.GrossMargin,
		MarginPct:   m.MarginPct,
	}
}

// ToExecutionMarginResponses converts a slice of margins to responses.
func ToExecutionMarginResponses(ms []domain.ExecutionMargin) []ExecutionMarginResponse {
	responses := make([]ExecutionMarginResponse, len(ms))
	for i := range ms {
		responses[i] = ToExecutionMarginResponse(&ms[i])
	}
	return responses
}
