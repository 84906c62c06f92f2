package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vectra-e2e/browser"
	"vectra-e2e/config"
	"vectra-e2e/models"
	"vectra-e2e/scenario"
	"vectra-e2e/services"
	"vectra-e2e/storage"
	"vectra-e2e/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Error("Invalid configuration: %v", err)
		os.Exit(2)
	}
	if cfg.NoColor {
		utils.DisableColor()
	}

	utils.Info("Vectra E2E starting | url=%s headless=%v retries=%d",
		cfg.BaseURL, cfg.Headless, cfg.Retries)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := browser.NewSession(cfg)
	if err != nil {
		utils.Error("Could not start browser: %v", err)
		os.Exit(1)
	}

	run := scenario.NewVectra(session).Run(ctx)
	session.Close()

	if err := storage.NewCSVWriter(cfg.CSVPath).Write(run); err != nil {
		utils.Error("Failed to save CSV: %v", err)
	}

	if cfg.DBEnabled {
		if err := saveToPostgres(ctx, cfg, run); err != nil {
			utils.Error("Failed to save run to PostgreSQL: %v", err)
		}
	}

	printSummary(run)
	services.PrintReport(services.GenerateReport(run))

	if run.Failed() {
		os.Exit(1)
	}
}

func saveToPostgres(ctx context.Context, cfg *config.Config, run models.RunResult) error {
	pgWriter, err := storage.NewPostgresWriter(ctx, cfg.DSN())
	if err != nil {
		return err
	}
	defer pgWriter.Close()

	if err := pgWriter.EnsureSchema(ctx); err != nil {
		return err
	}

	runID, err := pgWriter.WriteRun(ctx, run)
	if err != nil {
		return err
	}
	utils.Success("Saved run #%d to PostgreSQL", runID)
	return nil
}

func printSummary(run models.RunResult) {
	status := "PASSED"
	if run.Failed() {
		status = "FAILED"
	}

	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════╗")
	fmt.Println("║                SCENARIO COMPLETE             ║")
	fmt.Println("╠══════════════════════════════════════════════╣")
	fmt.Printf("║  Result         : %-26s║\n", status)
	fmt.Printf("║  Steps          : %-26d║\n", len(run.Steps))
	fmt.Println("╚══════════════════════════════════════════════╝")
	fmt.Println()
}
