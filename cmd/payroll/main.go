package main

import (
	"fmt"
	"os"

	"payroll/internal/console"
	"payroll/pkg/factory"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Factory oluşturulamadı: %v\n", err)
		os.Exit(1)
	}

	log := appFactory.GetLogger()
	cfg := appFactory.GetConfig()

	log.Info("Uygulama başlatılıyor", map[string]interface{}{"env": cfg.AppEnv})

	ui := console.New(
		os.Stdin,
		os.Stdout,
		appFactory.GetEmployeeService(),
		appFactory.GetPayrollReportService(),
		appFactory.GetAuditLogService(),
		log,
	)

	if cfg.SeedDemoData {
		ui.SeedDemoData()
	}

	ui.Run()

	log.Info("Uygulama kapatıldı", map[string]interface{}{})
}
