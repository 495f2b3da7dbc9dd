package domain

type TypeBreakdown struct {
	Count    int     `json:"count"`
	TotalNet float64 `json:"total_net"`
}

type PayrollSummary struct {
	TotalEmployees int                            `json:"total_employees"`
	TotalNet       float64                        `json:"total_net"`
	ByType         map[EmployeeType]TypeBreakdown `json:"by_type"`
}

type PayrollReportService interface {
	Summary() PayrollSummary
}
