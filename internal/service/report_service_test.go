package service

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/domain"
	"payroll/internal/repository"
	"payroll/pkg/logger"
)

func TestPayrollSummary(t *testing.T) {
	log := logger.New(logger.ErrorLevel, io.Discard)
	employeeRepo := repository.NewEmployeeRepository(log)
	auditLogRepo := repository.NewAuditLogRepository(log)
	employeeSvc := NewEmployeeService(employeeRepo, auditLogRepo, log)
	reportSvc := NewPayrollReportService(employeeRepo, log)

	_, err := employeeSvc.HireFullTime("Vikas", "vikas@example.com", 70000, 2000, 0)
	require.NoError(t, err)
	_, err = employeeSvc.HirePartTime("Manish", "manish@example.com", 40, 100)
	require.NoError(t, err)
	_, err = employeeSvc.HireIntern("Ria", "ria@example.com", 5000)
	require.NoError(t, err)
	_, err = employeeSvc.HireIntern("Dev", "dev@example.com", 4000)
	require.NoError(t, err)

	summary := reportSvc.Summary()

	assert.Equal(t, 4, summary.TotalEmployees)
	assert.Equal(t, 85000.0, summary.TotalNet)

	assert.Equal(t, domain.TypeBreakdown{Count: 1, TotalNet: 72000}, summary.ByType[domain.EmployeeTypeFullTime])
	assert.Equal(t, domain.TypeBreakdown{Count: 1, TotalNet: 4000}, summary.ByType[domain.EmployeeTypePartTime])
	assert.Equal(t, domain.TypeBreakdown{Count: 2, TotalNet: 9000}, summary.ByType[domain.EmployeeTypeIntern])

	_, hasContract := summary.ByType[domain.EmployeeTypeContract]
	assert.False(t, hasContract)
}

func TestPayrollSummaryEmpty(t *testing.T) {
	log := logger.New(logger.ErrorLevel, io.Discard)
	reportSvc := NewPayrollReportService(repository.NewEmployeeRepository(log), log)

	summary := reportSvc.Summary()

	assert.Equal(t, 0, summary.TotalEmployees)
	assert.Equal(t, 0.0, summary.TotalNet)
	assert.Empty(t, summary.ByType)
}
