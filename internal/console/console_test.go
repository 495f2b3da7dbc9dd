package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"payroll/internal/repository"
	"payroll/internal/service"
	"payroll/pkg/logger"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	log := logger.New(logger.ErrorLevel, io.Discard)
	employeeRepo := repository.NewEmployeeRepository(log)
	auditLogRepo := repository.NewAuditLogRepository(log)

	employeeSvc := service.NewEmployeeService(employeeRepo, auditLogRepo, log)
	reportSvc := service.NewPayrollReportService(employeeRepo, log)
	auditSvc := service.NewAuditLogService(auditLogRepo, log)

	var out bytes.Buffer
	return New(strings.NewReader(input), &out, employeeSvc, reportSvc, auditSvc, log), &out
}

func runSession(input string) string {
	c, out := newTestConsole(input)
	c.Run()
	return out.String()
}

func TestAddAndPayslipFlow(t *testing.T) {
	input := strings.Join([]string{
		"1",                   // Add Employee
		"2",                   // Part-time
		"Manish",
		"manish@example.com",
		"40",                  // hours
		"100",                 // rate
		"6",                   // Generate Payslip
		"1",
		"0",                   // Exit
	}, "\n") + "\n"

	output := runSession(input)

	assert.Contains(t, output, "Added: ID:1 | Name:Manish | Type:PartTime | Salary:4000.00")
	assert.Contains(t, output, "Hours: 40 | Rate: 100.00 | Net: 4000.00")
	assert.Contains(t, output, "Exiting... Goodbye!")
}

func TestInvalidIntegerIsRetried(t *testing.T) {
	output := runSession("abc\n5\n0\n")

	assert.Contains(t, output, "Please enter a valid integer.")
	assert.Contains(t, output, "No employees registered.")
}

func TestInvalidTypeRejected(t *testing.T) {
	output := runSession("1\n9\n0\n")

	assert.Contains(t, output, "Invalid type.")
}

func TestRemoveMissingEmployee(t *testing.T) {
	output := runSession("2\n5\n0\n")

	assert.Contains(t, output, "No employee found with ID 5")
}

func TestPayslipMissingEmployee(t *testing.T) {
	output := runSession("6\n42\n0\n")

	assert.Contains(t, output, "Employee not found.")
}

func TestUpdateFullTimeMonthlySalary(t *testing.T) {
	input := strings.Join([]string{
		"3",     // Update Employee
		"1",     // Vikas
		"n",     // change name?
		"n",     // change email?
		"y",     // change monthly salary?
		"71000",
		"n",     // change bonus?
		"n",     // change deduction?
		"0",
	}, "\n") + "\n"

	c, out := newTestConsole(input)
	c.SeedDemoData()
	c.Run()

	assert.Contains(t, out.String(), "Updated: ID:1 | Name:Vikas | Type:FullTime | Salary:73000.00")
}

func TestListSeededEmployees(t *testing.T) {
	c, out := newTestConsole("5\n0\n")
	c.SeedDemoData()
	c.Run()

	output := out.String()
	assert.Contains(t, output, "---- Employee List ----")
	assert.Contains(t, output, "ID:1 | Name:Vikas | Type:FullTime | Salary:72000.00")
	assert.Contains(t, output, "ID:2 | Name:Manish | Type:PartTime | Salary:4000.00")
	assert.Contains(t, output, "ID:3 | Name:Raj | Type:Contract | Salary:50000.00")
	assert.Contains(t, output, "ID:4 | Name:Ria | Type:Intern | Salary:5000.00")
}

func TestSearchByNameCaseInsensitive(t *testing.T) {
	input := strings.Join([]string{
		"4",   // Search Employee
		"2",   // by name
		"RIA",
		"0",
	}, "\n") + "\n"

	c, out := newTestConsole(input)
	c.SeedDemoData()
	c.Run()

	assert.Contains(t, out.String(), "ID:4 | Name:Ria | Type:Intern | Salary:5000.00")
}

func TestSummaryAndAuditMenus(t *testing.T) {
	c, out := newTestConsole("7\n8\n0\n")
	c.SeedDemoData()
	c.Run()

	output := out.String()
	assert.Contains(t, output, "---- Payroll Summary ----")
	assert.Contains(t, output, "Total: 4 employee(s), total net 131000.00")
	assert.Contains(t, output, "---- Audit Trail ----")
	assert.Contains(t, output, "Çalışan oluşturuldu: Vikas (FullTime)")
}

func TestRunStopsOnEOF(t *testing.T) {
	output := runSession("5\n")

	assert.Contains(t, output, "No employees registered.")
	assert.NotContains(t, output, "Exiting... Goodbye!")
}
