package service

import (
	"fmt"
	"strings"

	"payroll/internal/domain"
	"payroll/pkg/logger"
)

type EmployeeService struct {
	repo         domain.EmployeeRepository
	auditLogRepo domain.AuditLogRepository
	logger       logger.Logger
}

func NewEmployeeService(
	repo domain.EmployeeRepository,
	auditLogRepo domain.AuditLogRepository,
	logger logger.Logger,
) domain.EmployeeService {
	return &EmployeeService{
		repo:         repo,
		auditLogRepo: auditLogRepo,
		logger:       logger,
	}
}

func (s *EmployeeService) HireFullTime(name, email string, monthlySalary, bonus, deduction float64) (*domain.FullTimeEmployee, error) {
	e := domain.NewFullTimeEmployee(s.repo.NextID(), name, email, monthlySalary)
	e.Bonus = bonus
	e.Deduction = deduction

	s.store(e)
	return e, nil
}

func (s *EmployeeService) HirePartTime(name, email string, hoursWorked int, hourlyRate float64) (*domain.PartTimeEmployee, error) {
	e := domain.NewPartTimeEmployee(s.repo.NextID(), name, email, hoursWorked, hourlyRate)

	s.store(e)
	return e, nil
}

func (s *EmployeeService) HireContract(name, email string, contractAmount float64) (*domain.ContractEmployee, error) {
	e := domain.NewContractEmployee(s.repo.NextID(), name, email, contractAmount)

	s.store(e)
	return e, nil
}

func (s *EmployeeService) HireIntern(name, email string, stipend float64) (*domain.Intern, error) {
	e := domain.NewIntern(s.repo.NextID(), name, email, stipend)

	s.store(e)
	return e, nil
}

func (s *EmployeeService) store(e domain.Employee) {
	s.repo.Add(e)

	s.logger.Info("Çalışan işe alındı", map[string]interface{}{
		"id":   e.ID(),
		"name": e.Name(),
		"type": string(e.Type()),
	})

	s.audit(e.ID(), domain.ActionTypeCreate, fmt.Sprintf("Çalışan oluşturuldu: %s (%s)", e.Name(), e.Type()))
}

func (s *EmployeeService) GetEmployeeByID(id int64) (domain.Employee, error) {
	e, ok := s.repo.FindByID(id)
	if !ok {
		return nil, fmt.Errorf("çalışan ID'ye göre bulunamadı: %d: %w", id, domain.ErrEmployeeNotFound)
	}
	return e, nil
}

func (s *EmployeeService) SearchEmployeesByName(namePart string) []domain.Employee {
	return s.repo.SearchByName(namePart)
}

func (s *EmployeeService) ListEmployees() []domain.Employee {
	return s.repo.ListAll()
}

func (s *EmployeeService) RemoveEmployee(id int64) error {
	e, ok := s.repo.FindByID(id)
	if !ok {
		return fmt.Errorf("silinecek çalışan bulunamadı: %d: %w", id, domain.ErrEmployeeNotFound)
	}

	s.repo.Remove(id)

	s.logger.Info("Çalışan kaydı silindi", map[string]interface{}{"id": id, "name": e.Name()})

	s.audit(id, domain.ActionTypeDelete, fmt.Sprintf("Çalışan silindi: %s", e.Name()))
	return nil
}

// RecordEmployeeUpdate sürücü kaydı yerinde değiştirdikten sonra çağrılır;
// depo paylaşılan işaretçiyi tuttuğu için ayrıca yazma gerekmez.
func (s *EmployeeService) RecordEmployeeUpdate(e domain.Employee) error {
	if _, ok := s.repo.FindByID(e.ID()); !ok {
		return fmt.Errorf("güncellenecek çalışan bulunamadı: %d: %w", e.ID(), domain.ErrEmployeeNotFound)
	}

	s.logger.Info("Çalışan kaydı güncellendi", map[string]interface{}{"id": e.ID(), "name": e.Name()})

	s.audit(e.ID(), domain.ActionTypeUpdate, fmt.Sprintf("Çalışan güncellendi: %s", e.Name()))
	return nil
}

func (s *EmployeeService) GeneratePayslip(id int64) (string, error) {
	e, ok := s.repo.FindByID(id)
	if !ok {
		return "", fmt.Errorf("bordro oluşturulamadı: %d: %w", id, domain.ErrEmployeeNotFound)
	}

	var b strings.Builder
	b.WriteString("----- PAYSLIP -----\n")
	fmt.Fprintf(&b, "ID: %d\n", e.ID())
	fmt.Fprintf(&b, "Name: %s\n", e.Name())
	fmt.Fprintf(&b, "Type: %s\n", e.Type())
	b.WriteString(e.SalaryBreakdown())
	b.WriteString("\n-------------------")

	return b.String(), nil
}

func (s *EmployeeService) audit(employeeID int64, action domain.ActionType, details string) {
	auditLog := &domain.AuditLog{
		EntityType: domain.EntityTypeEmployee,
		EntityID:   employeeID,
		Action:     action,
		Details:    details,
	}

	if err := s.auditLogRepo.Create(auditLog); err != nil {
		s.logger.Error("Denetim kaydı oluşturulamadı", map[string]interface{}{"employee_id": employeeID, "error": err.Error()})
	}
}
