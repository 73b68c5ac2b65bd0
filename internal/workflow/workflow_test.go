package workflow

import (
	"context"
	"testing"

	"github.com/pkg/errors"
)

func TestWorkflow(t *testing.T) {
	executed := make([]string, 0)

	record := func(name string, err error) Step {
		return StepFunc(name, func(ctx context.Context) error {
			executed = append(executed, name)
			return err
		})
	}

	wf := New(
		record("first", nil),
		record("second", nil),
		record("third", nil),
	)

	if err := wf.Execute(context.Background()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 3, len(executed); e != g {
		t.Fatalf("len(executed): expected '%d', got '%d'", e, g)
	}

	for i, name := range wf.Steps() {
		if e, g := name, executed[i]; e != g {
			t.Errorf("executed[%d]: expected '%s', got '%s'", i, e, g)
		}
	}
}

func TestWorkflowFailFast(t *testing.T) {
	executed := make([]string, 0)

	errBoom := errors.New("boom")

	record := func(name string, err error) Step {
		return StepFunc(name, func(ctx context.Context) error {
			executed = append(executed, name)
			return err
		})
	}

	wf := New(
		record("first", nil),
		record("second", errBoom),
		record("third", nil),
	)

	err := wf.Execute(context.Background())
	if err == nil {
		t.Fatalf("wf.Execute(): expected an error, got nil")
	}

	if !errors.Is(err, errBoom) {
		t.Errorf("err: expected to wrap '%v', got '%v'", errBoom, err)
	}

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("err: expected a *StepError, got '%T'", err)
	}

	if e, g := "second", stepErr.Step(); e != g {
		t.Errorf("stepErr.Step(): expected '%s', got '%s'", e, g)
	}

	if e, g := 2, len(executed); e != g {
		t.Errorf("len(executed): expected '%d', got '%d'", e, g)
	}
}

func TestWorkflowCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false

	wf := New(StepFunc("never", func(ctx context.Context) error {
		called = true
		return nil
	}))

	if err := wf.Execute(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("wf.Execute(): expected context.Canceled, got '%v'", err)
	}

	if called {
		t.Errorf("step should not have been executed")
	}
}
