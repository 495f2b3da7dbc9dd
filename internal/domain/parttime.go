package domain

import "fmt"

type PartTimeEmployee struct {
	EmployeeBase
	HoursWorked int
	HourlyRate  float64
}

func NewPartTimeEmployee(id int64, name, email string, hoursWorked int, hourlyRate float64) *PartTimeEmployee {
	return &PartTimeEmployee{
		EmployeeBase: newEmployeeBase(id, name, email),
		HoursWorked:  hoursWorked,
		HourlyRate:   hourlyRate,
	}
}

func (e *PartTimeEmployee) Type() EmployeeType {
	return EmployeeTypePartTime
}

func (e *PartTimeEmployee) CalculateSalary() float64 {
	return float64(e.HoursWorked) * e.HourlyRate
}

func (e *PartTimeEmployee) SalaryBreakdown() string {
	return fmt.Sprintf("Hours: %d | Rate: %.2f | Net: %.2f", e.HoursWorked, e.HourlyRate, e.CalculateSalary())
}

func (e *PartTimeEmployee) Summary() string {
	return summarize(e)
}
