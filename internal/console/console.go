package console

import (
	"bufio"
	"fmt"
	"io"

	"payroll/internal/domain"
	"payroll/pkg/logger"
)

// Console etkileşimli menü döngüsüdür: girdiyi okur, ayrıştırır ve
// servis katmanına iletir. Tüm değer doğrulaması bu sınırda yapılır;
// çekirdek katman girdisine güvenir.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer

	employees domain.EmployeeService
	reports   domain.PayrollReportService
	audits    domain.AuditLogService
	logger    logger.Logger
}

func New(
	in io.Reader,
	out io.Writer,
	employees domain.EmployeeService,
	reports domain.PayrollReportService,
	audits domain.AuditLogService,
	logger logger.Logger,
) *Console {
	return &Console{
		scanner:   bufio.NewScanner(in),
		out:       out,
		employees: employees,
		reports:   reports,
		audits:    audits,
		logger:    logger,
	}
}

func (c *Console) Run() {
	for {
		c.printMenu()

		choice, ok := c.readInt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case 1:
			c.addEmployeeMenu()
		case 2:
			c.removeEmployeeMenu()
		case 3:
			c.updateEmployeeMenu()
		case 4:
			c.searchMenu()
		case 5:
			c.listAll()
		case 6:
			c.payslipMenu()
		case 7:
			c.summaryMenu()
		case 8:
			c.auditMenu()
		case 0:
			fmt.Fprintln(c.out, "Exiting... Goodbye!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid option. Try again.")
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "=== Employee Payroll System (In-Memory) ===")
	fmt.Fprintln(c.out, "1. Add Employee")
	fmt.Fprintln(c.out, "2. Remove Employee")
	fmt.Fprintln(c.out, "3. Update Employee")
	fmt.Fprintln(c.out, "4. Search Employee")
	fmt.Fprintln(c.out, "5. List All Employees")
	fmt.Fprintln(c.out, "6. Generate Payslip")
	fmt.Fprintln(c.out, "7. Payroll Summary")
	fmt.Fprintln(c.out, "8. Audit Trail")
	fmt.Fprintln(c.out, "0. Exit")
}

func (c *Console) addEmployeeMenu() {
	fmt.Fprintln(c.out, "Select type: 1.Full-time 2.Part-time 3.Contract 4.Intern")

	code, ok := c.readInt("Type: ")
	if !ok {
		return
	}

	employeeType, err := domain.EmployeeTypeFromCode(code)
	if err != nil {
		fmt.Fprintln(c.out, "Invalid type.")
		return
	}

	name, ok := c.readString("Name: ")
	if !ok {
		return
	}
	email, ok := c.readString("Email: ")
	if !ok {
		return
	}

	var e domain.Employee

	switch employeeType {
	case domain.EmployeeTypeFullTime:
		monthly, ok := c.readFloat("Monthly salary: ")
		if !ok {
			return
		}

		var bonus, deduction float64
		if answer, ok := c.yesNo("Add bonus? (y/n)"); ok && answer {
			if bonus, ok = c.readFloat("Bonus: "); !ok {
				return
			}
		}
		if answer, ok := c.yesNo("Add deduction? (y/n)"); ok && answer {
			if deduction, ok = c.readFloat("Deduction: "); !ok {
				return
			}
		}

		e, err = c.employees.HireFullTime(name, email, monthly, bonus, deduction)
	case domain.EmployeeTypePartTime:
		hours, ok := c.readInt("Hours worked: ")
		if !ok {
			return
		}
		rate, ok := c.readFloat("Hourly rate: ")
		if !ok {
			return
		}

		e, err = c.employees.HirePartTime(name, email, hours, rate)
	case domain.EmployeeTypeContract:
		amount, ok := c.readFloat("Contract amount: ")
		if !ok {
			return
		}

		e, err = c.employees.HireContract(name, email, amount)
	case domain.EmployeeTypeIntern:
		stipend, ok := c.readFloat("Stipend: ")
		if !ok {
			return
		}

		e, err = c.employees.HireIntern(name, email, stipend)
	}

	if err != nil {
		c.logger.Error("Çalışan eklenemedi", map[string]interface{}{"error": err.Error()})
		fmt.Fprintln(c.out, "Could not add employee.")
		return
	}

	fmt.Fprintln(c.out, "Added: "+e.Summary())
}

func (c *Console) removeEmployeeMenu() {
	id, ok := c.readInt("Enter ID to remove: ")
	if !ok {
		return
	}

	if err := c.employees.RemoveEmployee(int64(id)); err != nil {
		fmt.Fprintf(c.out, "No employee found with ID %d\n", id)
		return
	}
	fmt.Fprintf(c.out, "Removed employee with ID %d\n", id)
}

func (c *Console) updateEmployeeMenu() {
	id, ok := c.readInt("Enter employee ID to update: ")
	if !ok {
		return
	}

	e, err := c.employees.GetEmployeeByID(int64(id))
	if err != nil {
		fmt.Fprintf(c.out, "No employee with ID %d\n", id)
		return
	}

	fmt.Fprintln(c.out, "Found: "+e.Summary())

	if answer, ok := c.yesNo("Change name? (y/n)"); !ok {
		return
	} else if answer {
		name, ok := c.readString("New name: ")
		if !ok {
			return
		}
		e.SetName(name)
	}

	if answer, ok := c.yesNo("Change email? (y/n)"); !ok {
		return
	} else if answer {
		email, ok := c.readString("New email: ")
		if !ok {
			return
		}
		e.SetEmail(email)
	}

	if !c.updateVariantFields(e) {
		return
	}

	if err := c.employees.RecordEmployeeUpdate(e); err != nil {
		c.logger.Error("Güncelleme kaydedilemedi", map[string]interface{}{"id": id, "error": err.Error()})
	}

	fmt.Fprintln(c.out, "Updated: "+e.Summary())
}

// updateVariantFields tür bazlı alan güncellemelerini kayıt üzerinde yerinde yapar.
func (c *Console) updateVariantFields(e domain.Employee) bool {
	switch emp := e.(type) {
	case *domain.FullTimeEmployee:
		if answer, ok := c.yesNo("Change monthly salary? (y/n)"); !ok {
			return false
		} else if answer {
			value, ok := c.readFloat("Monthly salary: ")
			if !ok {
				return false
			}
			emp.MonthlySalary = value
		}
		if answer, ok := c.yesNo("Change bonus? (y/n)"); !ok {
			return false
		} else if answer {
			value, ok := c.readFloat("Bonus: ")
			if !ok {
				return false
			}
			emp.Bonus = value
		}
		if answer, ok := c.yesNo("Change deduction? (y/n)"); !ok {
			return false
		} else if answer {
			value, ok := c.readFloat("Deduction: ")
			if !ok {
				return false
			}
			emp.Deduction = value
		}
	case *domain.PartTimeEmployee:
		if answer, ok := c.yesNo("Change hours worked? (y/n)"); !ok {
			return false
		} else if answer {
			value, ok := c.readInt("Hours worked: ")
			if !ok {
				return false
			}
			emp.HoursWorked = value
		}
		if answer, ok := c.yesNo("Change hourly rate? (y/n)"); !ok {
			return false
		} else if answer {
			value, ok := c.readFloat("Hourly rate: ")
			if !ok {
				return false
			}
			emp.HourlyRate = value
		}
	case *domain.ContractEmployee:
		if answer, ok := c.yesNo("Change contract amount? (y/n)"); !ok {
			return false
		} else if answer {
			value, ok := c.readFloat("Contract amount: ")
			if !ok {
				return false
			}
			emp.ContractAmount = value
		}
	case *domain.Intern:
		if answer, ok := c.yesNo("Change stipend? (y/n)"); !ok {
			return false
		} else if answer {
			value, ok := c.readFloat("Stipend: ")
			if !ok {
				return false
			}
			emp.Stipend = value
		}
	}
	return true
}

func (c *Console) searchMenu() {
	fmt.Fprintln(c.out, "Search by: 1.ID  2.Name")

	choice, ok := c.readInt("Choice: ")
	if !ok {
		return
	}

	switch choice {
	case 1:
		id, ok := c.readInt("ID: ")
		if !ok {
			return
		}

		e, err := c.employees.GetEmployeeByID(int64(id))
		if err != nil {
			fmt.Fprintln(c.out, "Not found")
			return
		}
		fmt.Fprintln(c.out, e.Summary())
	case 2:
		namePart, ok := c.readString("Name part: ")
		if !ok {
			return
		}

		results := c.employees.SearchEmployeesByName(namePart)
		if len(results) == 0 {
			fmt.Fprintln(c.out, "No matches.")
			return
		}
		for _, e := range results {
			fmt.Fprintln(c.out, e.Summary())
		}
	default:
		fmt.Fprintln(c.out, "Invalid choice.")
	}
}

func (c *Console) listAll() {
	employees := c.employees.ListEmployees()
	if len(employees) == 0 {
		fmt.Fprintln(c.out, "No employees registered.")
		return
	}

	fmt.Fprintln(c.out, "---- Employee List ----")
	for _, e := range employees {
		fmt.Fprintln(c.out, e.Summary())
	}
}

func (c *Console) payslipMenu() {
	id, ok := c.readInt("Enter employee ID for payslip: ")
	if !ok {
		return
	}

	payslip, err := c.employees.GeneratePayslip(int64(id))
	if err != nil {
		fmt.Fprintln(c.out, "Employee not found.")
		return
	}
	fmt.Fprintln(c.out, payslip)
}

func (c *Console) summaryMenu() {
	summary := c.reports.Summary()

	fmt.Fprintln(c.out, "---- Payroll Summary ----")
	for _, employeeType := range []domain.EmployeeType{
		domain.EmployeeTypeFullTime,
		domain.EmployeeTypePartTime,
		domain.EmployeeTypeContract,
		domain.EmployeeTypeIntern,
	} {
		breakdown, ok := summary.ByType[employeeType]
		if !ok {
			continue
		}
		fmt.Fprintf(c.out, "%s: %d employee(s), total net %.2f\n", employeeType, breakdown.Count, breakdown.TotalNet)
	}
	fmt.Fprintf(c.out, "Total: %d employee(s), total net %.2f\n", summary.TotalEmployees, summary.TotalNet)
}

func (c *Console) auditMenu() {
	logs, err := c.audits.GetAllLogs(1, 20)
	if err != nil {
		c.logger.Error("Denetim kayıtları listelenemedi", map[string]interface{}{"error": err.Error()})
		fmt.Fprintln(c.out, "Could not load audit trail.")
		return
	}

	if len(logs) == 0 {
		fmt.Fprintln(c.out, "No audit entries.")
		return
	}

	fmt.Fprintln(c.out, "---- Audit Trail ----")
	for _, entry := range logs {
		fmt.Fprintf(c.out, "[%s] %s %s#%d - %s\n",
			entry.CreatedAt.Format("2006-01-02 15:04:05"), entry.Action, entry.EntityType, entry.EntityID, entry.Details)
	}
}
