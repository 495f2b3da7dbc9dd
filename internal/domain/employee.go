package domain

import "fmt"

type EmployeeType string

const (
	EmployeeTypeFullTime EmployeeType = "FullTime"
	EmployeeTypePartTime EmployeeType = "PartTime"
	EmployeeTypeContract EmployeeType = "Contract"
	EmployeeTypeIntern   EmployeeType = "Intern"
)

// Menü kodları: 1=FullTime 2=PartTime 3=Contract 4=Intern
func EmployeeTypeFromCode(code int) (EmployeeType, error) {
	switch code {
	case 1:
		return EmployeeTypeFullTime, nil
	case 2:
		return EmployeeTypePartTime, nil
	case 3:
		return EmployeeTypeContract, nil
	case 4:
		return EmployeeTypeIntern, nil
	default:
		return "", ErrInvalidEmployeeType
	}
}

type Employee interface {
	ID() int64
	Name() string
	SetName(name string)
	Email() string
	SetEmail(email string)
	Type() EmployeeType

	CalculateSalary() float64
	SalaryBreakdown() string
	Summary() string
}

// EmployeeBase ortak alanları taşır; id oluşturma anında atanır ve değişmez.
type EmployeeBase struct {
	id    int64
	name  string
	email string
}

func newEmployeeBase(id int64, name, email string) EmployeeBase {
	return EmployeeBase{id: id, name: name, email: email}
}

func (b *EmployeeBase) ID() int64 { return b.id }

func (b *EmployeeBase) Name() string { return b.name }

func (b *EmployeeBase) SetName(name string) { b.name = name }

func (b *EmployeeBase) Email() string { return b.email }

func (b *EmployeeBase) SetEmail(email string) { b.email = email }

func summarize(e Employee) string {
	return fmt.Sprintf("ID:%d | Name:%s | Type:%s | Salary:%.2f", e.ID(), e.Name(), e.Type(), e.CalculateSalary())
}

func baseBreakdown(e Employee) string {
	return fmt.Sprintf("Base salary: %.2f", e.CalculateSalary())
}

type EmployeeRepository interface {
	NextID() int64
	Add(e Employee)
	Remove(id int64) bool
	FindByID(id int64) (Employee, bool)
	SearchByName(namePart string) []Employee
	ListAll() []Employee
	Count() int
}

type EmployeeService interface {
	HireFullTime(name, email string, monthlySalary, bonus, deduction float64) (*FullTimeEmployee, error)
	HirePartTime(name, email string, hoursWorked int, hourlyRate float64) (*PartTimeEmployee, error)
	HireContract(name, email string, contractAmount float64) (*ContractEmployee, error)
	HireIntern(name, email string, stipend float64) (*Intern, error)

	GetEmployeeByID(id int64) (Employee, error)
	SearchEmployeesByName(namePart string) []Employee
	ListEmployees() []Employee
	RemoveEmployee(id int64) error
	RecordEmployeeUpdate(e Employee) error
	GeneratePayslip(id int64) (string, error)
}
