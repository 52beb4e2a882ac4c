package dto

import "github.com/habilafinance/finledger_backend/internal/core/domain"

// Period types accepted by the distribution endpoints, mirroring the report
// screens of the legacy application.
const (
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodAnnual    = "annual"
	PeriodCustom    = "custom"
)

// DistributionPeriodParams selects the period over which a distribution plan
// is computed. Which fields are required depends on Period:
// monthly needs year+month, quarterly needs year+quarter, annual needs year,
// custom needs start+end.
type DistributionPeriodParams struct {
	Period  string `form:"period" binding:"required,oneof=monthly quarterly annual custom"`
	Year    int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month   int    `form:"month" binding:"omitempty,min=1,max=12"`
	Quarter int    `form:"quarter" binding:"omitempty,min=1,max=4"`
	Start   string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End     string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

// RecordDistributionRequest asks the engine to persist one Outflow per
// active shareholder for the resolved period, dated at Date.
type RecordDistributionRequest struct {
	Period  string `json:"period" binding:"required,oneof=monthly quarterly annual custom"`
	Year    int    `json:"year" binding:"omitempty,min=2000,max=2100"`
	Month   int    `json:"month" binding:"omitempty,min=1,max=12"`
	Quarter int    `json:"quarter" binding:"omitempty,min=1,max=4"`
	Start   string `json:"start" binding:"omitempty,datetime=2006-01-02"`
	End     string `json:"end" binding:"omitempty,datetime=2006-01-02"`
	Date    string `json:"date" binding:"required,datetime=2006-01-02"`
}

// PeriodParams of RecordDistributionRequest as reusable selector.
func (r RecordDistributionRequest) PeriodParams() DistributionPeriodParams {
	return DistributionPeriodParams{
		Period:  r.Period,
		Year:    r.Year,
		Month:   r.Month,
		Quarter: r.Quarter,
		Start:   r.Start,
		End:     r.End,
	}
}

// DistributionHistoryParams filters recorded distribution transactions.
type DistributionHistoryParams struct {
	ShareholderID string `form:"shareholderID"`
	Year          int    `form:"year" binding:"omitempty,min=2000,max=2100"`
}

// RecordDistributionResponse pairs the computed plan with the outcome of the
// persistence pass.
type RecordDistributionResponse struct {
	Plan   domain.DistributionPlan   `json:"plan"`
	Result domain.DistributionResult `json:"result"`
}
