package domain

import "fmt"

type FullTimeEmployee struct {
	EmployeeBase
	MonthlySalary float64
	Bonus         float64
	Deduction     float64
}

func NewFullTimeEmployee(id int64, name, email string, monthlySalary float64) *FullTimeEmployee {
	return &FullTimeEmployee{
		EmployeeBase:  newEmployeeBase(id, name, email),
		MonthlySalary: monthlySalary,
	}
}

func (e *FullTimeEmployee) Type() EmployeeType {
	return EmployeeTypeFullTime
}

// Kesinti maaş+primden büyükse sonuç negatife düşebilir; bilinçli olarak
// sıfıra sabitlenmez.
func (e *FullTimeEmployee) CalculateSalary() float64 {
	return e.MonthlySalary + e.Bonus - e.Deduction
}

func (e *FullTimeEmployee) SalaryBreakdown() string {
	return fmt.Sprintf("Monthly: %.2f | Bonus: %.2f | Deduction: %.2f | Net: %.2f",
		e.MonthlySalary, e.Bonus, e.Deduction, e.CalculateSalary())
}

func (e *FullTimeEmployee) Summary() string {
	return summarize(e)
}
