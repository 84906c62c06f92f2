// Package scenario runs an ordered list of browser steps in one tab,
// the way a serial Playwright describe block does: a failed step stops the
// rest, which are reported as skipped.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vectra-e2e/config"
	"vectra-e2e/models"
	"vectra-e2e/utils"
)

var errSkipped = errors.New("skipped after an earlier failure")

type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

type Runner struct {
	retries     int
	backoff     time.Duration
	stepTimeout time.Duration
	log         *utils.Logger
}

func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		retries:     cfg.Retries,
		backoff:     cfg.RetryBackoff,
		stepTimeout: cfg.StepTimeout,
		log:         utils.NewLogger("Scenario"),
	}
}

// WithLogger replaces the runner's logger.
func (r *Runner) WithLogger(l *utils.Logger) *Runner {
	r.log = l
	return r
}

// Run executes setup, then steps in order, then teardown. Teardown always
// runs. Setup and teardown appear in the results only when they are set.
func (r *Runner) Run(ctx context.Context, setup Step, steps []Step, teardown Step) []models.StepResult {
	results := make([]models.StepResult, 0, len(steps)+2)
	failed := false

	if setup.Run != nil {
		res := r.runStep(ctx, setup)
		results = append(results, res)
		failed = res.Status == models.StepFailed
	}

	for _, step := range steps {
		if failed || ctx.Err() != nil {
			results = append(results, models.StepResult{
				Name:   step.Name,
				Status: models.StepSkipped,
				Err:    errSkipped,
			})
			r.log.Warn("Skipping: %s", step.Name)
			continue
		}

		res := r.runStep(ctx, step)
		results = append(results, res)
		failed = res.Status == models.StepFailed
	}

	if teardown.Run != nil {
		// teardown must run even when ctx was cancelled mid-scenario
		results = append(results, r.runStep(context.WithoutCancel(ctx), teardown))
	}

	return results
}

func (r *Runner) runStep(ctx context.Context, step Step) models.StepResult {
	r.log.Section(step.Name)

	start := time.Now()
	attempts := 0
	err := utils.Retry(ctx, r.retries+1, r.backoff, func(attempt int) error {
		attempts = attempt
		stepCtx := ctx
		if r.stepTimeout > 0 {
			var cancel context.CancelFunc
			stepCtx, cancel = context.WithTimeout(ctx, r.stepTimeout)
			defer cancel()
		}
		return safeRun(stepCtx, step)
	})

	res := models.StepResult{
		Name:     step.Name,
		Status:   models.StepPassed,
		Attempts: attempts,
		Duration: time.Since(start),
		Err:      err,
	}
	if err != nil {
		res.Status = models.StepFailed
		r.log.Error("FAILED: %s (%v): %v", step.Name, res.Duration.Round(time.Millisecond), err)
	} else {
		r.log.Success("Passed: %s (%v)", step.Name, res.Duration.Round(time.Millisecond))
	}
	return res
}

// safeRun turns a panicking step into a failed one.
func safeRun(ctx context.Context, step Step) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("step %q panicked: %v", step.Name, p)
		}
	}()
	return step.Run(ctx)
}
