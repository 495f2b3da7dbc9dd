package domain

type Intern struct {
	EmployeeBase
	Stipend float64
}

func NewIntern(id int64, name, email string, stipend float64) *Intern {
	return &Intern{
		EmployeeBase: newEmployeeBase(id, name, email),
		Stipend:      stipend,
	}
}

func (e *Intern) Type() EmployeeType {
	return EmployeeTypeIntern
}

func (e *Intern) CalculateSalary() float64 {
	return e.Stipend
}

func (e *Intern) SalaryBreakdown() string {
	return baseBreakdown(e)
}

func (e *Intern) Summary() string {
	return summarize(e)
}
