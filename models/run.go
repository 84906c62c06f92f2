package models

import "time"

type StepStatus string

const (
	StepPassed  StepStatus = "passed"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

type StepResult struct {
	Name     string
	Status   StepStatus
	Attempts int
	Duration time.Duration
	Err      error
}

// ErrorText is the step error as a string, empty when the step did not fail.
func (r StepResult) ErrorText() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

type RunResult struct {
	BaseURL    string
	StartedAt  time.Time
	FinishedAt time.Time
	Steps      []StepResult
	Prices     *PriceSummary
	Phones     PhoneNumberSet
	// ExpectedPhone is the customer-service number the run looked for.
	ExpectedPhone string
}

func (r RunResult) Failed() bool {
	for _, s := range r.Steps {
		if s.Status == StepFailed {
			return true
		}
	}
	return false
}
