package domain

type ContractEmployee struct {
	EmployeeBase
	ContractAmount float64
}

func NewContractEmployee(id int64, name, email string, contractAmount float64) *ContractEmployee {
	return &ContractEmployee{
		EmployeeBase:   newEmployeeBase(id, name, email),
		ContractAmount: contractAmount,
	}
}

func (e *ContractEmployee) Type() EmployeeType {
	return EmployeeTypeContract
}

func (e *ContractEmployee) CalculateSalary() float64 {
	return e.ContractAmount
}

func (e *ContractEmployee) SalaryBreakdown() string {
	return baseBreakdown(e)
}

func (e *ContractEmployee) Summary() string {
	return summarize(e)
}
