package factory

import (
	"payroll/internal/config"
	"payroll/internal/domain"
	"payroll/internal/repository"
	"payroll/internal/service"
	"payroll/pkg/logger"
)

type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config

	GetEmployeeRepository() domain.EmployeeRepository
	GetAuditLogRepository() domain.AuditLogRepository

	GetEmployeeService() domain.EmployeeService
	GetAuditLogService() domain.AuditLogService
	GetPayrollReportService() domain.PayrollReportService
}

type AppFactory struct {
	config *config.Config
	logger logger.Logger

	employeeRepository domain.EmployeeRepository
	auditLogRepository domain.AuditLogRepository

	employeeService      domain.EmployeeService
	auditLogService      domain.AuditLogService
	payrollReportService domain.PayrollReportService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	factory := &AppFactory{
		config: cfg,
		logger: log,
	}

	factory.initRepositories()
	factory.initServices()

	return factory, nil
}

func (f *AppFactory) initRepositories() {
	f.employeeRepository = repository.NewEmployeeRepository(f.logger)
	f.auditLogRepository = repository.NewAuditLogRepository(f.logger)
}

func (f *AppFactory) initServices() {
	f.employeeService = service.NewEmployeeService(f.employeeRepository, f.auditLogRepository, f.logger)
	f.auditLogService = service.NewAuditLogService(f.auditLogRepository, f.logger)
	f.payrollReportService = service.NewPayrollReportService(f.employeeRepository, f.logger)
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetEmployeeRepository() domain.EmployeeRepository {
	return f.employeeRepository
}

func (f *AppFactory) GetAuditLogRepository() domain.AuditLogRepository {
	return f.auditLogRepository
}

func (f *AppFactory) GetEmployeeService() domain.EmployeeService {
	return f.employeeService
}

func (f *AppFactory) GetAuditLogService() domain.AuditLogService {
	return f.auditLogService
}

func (f *AppFactory) GetPayrollReportService() domain.PayrollReportService {
	return f.payrollReportService
}
