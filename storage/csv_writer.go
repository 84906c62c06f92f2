package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"vectra-e2e/models"
	"vectra-e2e/utils"
)

// CSVWriter saves the step results of a run to a CSV file, one row per step.
type CSVWriter struct {
	path string
}

func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Write replaces the file with the results of run.
// Creates the output directory if it does not exist.
//
// CSV columns: started_at, step, status, attempts, duration_ms, error
func (w *CSVWriter) Write(run models.RunResult) error {
	if len(run.Steps) == 0 {
		utils.Warn("No step results to write")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	rows := [][]string{{"started_at", "step", "status", "attempts", "duration_ms", "error"}}
	startedAt := run.StartedAt.UTC().Format(time.RFC3339)
	for _, s := range run.Steps {
		rows = append(rows, []string{
			startedAt,
			s.Name,
			string(s.Status),
			strconv.Itoa(s.Attempts),
			strconv.FormatInt(s.Duration.Milliseconds(), 10),
			s.ErrorText(),
		})
	}

	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}

	utils.Success("Saved %d step results → %s", len(run.Steps), w.path)
	return nil
}
