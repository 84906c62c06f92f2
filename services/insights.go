package services

import (
	"fmt"
	"io"
	"os"
	"time"

	"vectra-e2e/models"
)

type Report struct {
	TotalSteps    int
	Passed        int
	Failed        int
	Skipped       int
	Duration      time.Duration
	Slowest       models.StepResult
	Steps         []models.StepResult
	Prices        *models.PriceSummary
	PhoneNumbers  []string
	ExpectedPhone string
	ExpectedFound bool
}

// GenerateReport summarizes a scenario run.
func GenerateReport(run models.RunResult) Report {
	report := Report{
		TotalSteps:    len(run.Steps),
		Steps:         run.Steps,
		Prices:        run.Prices,
		PhoneNumbers:  run.Phones.Sorted(),
		ExpectedPhone: run.ExpectedPhone,
		ExpectedFound: run.Phones.Contains(run.ExpectedPhone),
		Duration:      run.FinishedAt.Sub(run.StartedAt),
	}
	if report.Duration < 0 {
		report.Duration = 0
	}

	for _, s := range run.Steps {
		switch s.Status {
		case models.StepPassed:
			report.Passed++
		case models.StepFailed:
			report.Failed++
		case models.StepSkipped:
			report.Skipped++
		}

		if s.Duration > report.Slowest.Duration {
			report.Slowest = s
		}
	}

	return report
}

func PrintReport(report Report) {
	WriteReport(os.Stdout, report)
}

func WriteReport(w io.Writer, report Report) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "┌──────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                     Vectra E2E Run Summary                   │")
	fmt.Fprintln(w, "├───────────────────────────────┬──────────────────────────────┤")
	fmt.Fprintf(w, "│ %-29s │ %-28d │\n", "Steps", report.TotalSteps)
	fmt.Fprintf(w, "│ %-29s │ %-28d │\n", "Passed", report.Passed)
	fmt.Fprintf(w, "│ %-29s │ %-28d │\n", "Failed", report.Failed)
	fmt.Fprintf(w, "│ %-29s │ %-28d │\n", "Skipped", report.Skipped)
	fmt.Fprintf(w, "│ %-29s │ %-28s │\n", "Duration", report.Duration.Round(time.Millisecond))
	fmt.Fprintln(w, "└───────────────────────────────┴──────────────────────────────┘")

	if report.Prices != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "┌──────────────────────────────────────────────────────────────┐")
		fmt.Fprintln(w, "│                         Offer Prices                         │")
		fmt.Fprintln(w, "├───────────────────────────────┬──────────────────────────────┤")
		fmt.Fprintf(w, "│ %-29s │ %-28d │\n", "Prices found", len(report.Prices.Samples))
		fmt.Fprintf(w, "│ %-29s │ %-28d │\n", "Prices skipped", len(report.Prices.Skipped))
		fmt.Fprintf(w, "│ %-29s │ %-28.2f │\n", "Highest", report.Prices.Highest)
		fmt.Fprintf(w, "│ %-29s │ %-28.2f │\n", "Lowest", report.Prices.Lowest)
		fmt.Fprintln(w, "└───────────────────────────────┴──────────────────────────────┘")
	}

	if report.ExpectedPhone != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "┌──────────────────────────────────────────────┬───────────────┐")
		fmt.Fprintln(w, "│ Phone numbers on the contact page            │ Expected      │")
		fmt.Fprintln(w, "├──────────────────────────────────────────────┼───────────────┤")
		for _, n := range report.PhoneNumbers {
			mark := ""
			if n == report.ExpectedPhone {
				mark = "yes"
			}
			fmt.Fprintf(w, "│ %-44s │ %-13s │\n", n, mark)
		}
		if !report.ExpectedFound {
			fmt.Fprintf(w, "│ %-44s │ %-13s │\n", report.ExpectedPhone, "MISSING")
		}
		fmt.Fprintln(w, "└──────────────────────────────────────────────┴───────────────┘")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "┌─────┬──────────────────────────────────────────────┬──────────┐")
	fmt.Fprintln(w, "│ #   │ Step                                         │ Status   │")
	fmt.Fprintln(w, "├─────┼──────────────────────────────────────────────┼──────────┤")
	for i, s := range report.Steps {
		fmt.Fprintf(w, "│ %-3d │ %-44s │ %-8s │\n", i+1, truncateText(s.Name, 44), s.Status)
	}
	fmt.Fprintln(w, "└─────┴──────────────────────────────────────────────┴──────────┘")

	for _, s := range report.Steps {
		if s.Status == models.StepFailed {
			fmt.Fprintf(w, "FAILED %s: %s\n", s.Name, s.ErrorText())
		}
	}
}

func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
