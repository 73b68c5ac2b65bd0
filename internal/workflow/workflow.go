package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

// Workflow executes its steps in order and stops at the first failure.
// Steps already executed are not undone.
type Workflow struct {
	steps []Step
}

func (w *Workflow) Execute(ctx context.Context) error {
	for idx, step := range w.steps {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		stepCtx := slogx.WithAttrs(ctx, slog.String("step", step.Name()), slog.Int("index", idx))

		slog.InfoContext(stepCtx, "executing step")

		start := time.Now()

		if err := step.Execute(stepCtx); err != nil {
			slog.ErrorContext(stepCtx, "step failed", slogx.Error(err))
			return errors.WithStack(NewStepError(step.Name(), err))
		}

		slog.DebugContext(stepCtx, "step done", slog.Duration("duration", time.Since(start)))
	}

	return nil
}

func (w *Workflow) Steps() []string {
	names := make([]string, 0, len(w.steps))
	for _, s := range w.steps {
		names = append(names, s.Name())
	}

	return names
}

func New(steps ...Step) *Workflow {
	return &Workflow{steps: steps}
}
