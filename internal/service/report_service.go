package service

import (
	"payroll/internal/domain"
	"payroll/pkg/logger"
)

type PayrollReportService struct {
	repo   domain.EmployeeRepository
	logger logger.Logger
}

func NewPayrollReportService(repo domain.EmployeeRepository, logger logger.Logger) domain.PayrollReportService {
	return &PayrollReportService{
		repo:   repo,
		logger: logger,
	}
}

func (s *PayrollReportService) Summary() domain.PayrollSummary {
	summary := domain.PayrollSummary{
		ByType: make(map[domain.EmployeeType]domain.TypeBreakdown),
	}

	for _, e := range s.repo.ListAll() {
		net := e.CalculateSalary()

		summary.TotalEmployees++
		summary.TotalNet += net

		breakdown := summary.ByType[e.Type()]
		breakdown.Count++
		breakdown.TotalNet += net
		summary.ByType[e.Type()] = breakdown
	}

	s.logger.Debug("Bordro özeti hesaplandı", map[string]interface{}{
		"total_employees": summary.TotalEmployees,
		"total_net":       summary.TotalNet,
	})

	return summary
}
