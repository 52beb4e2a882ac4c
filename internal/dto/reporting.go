package dto

// MonthlyReportParams selects the month for the detailed monthly report.
type MonthlyReportParams struct {
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// PeriodSummaryParams selects the date range for the analytics summary.
type PeriodSummaryParams struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
	TopN  int    `form:"topN" binding:"omitempty,min=1,max=100"`
}
