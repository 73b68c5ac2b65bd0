package workflow

type StepError struct {
	step string
	err  error
}

func (e *StepError) Step() string {
	return e.step
}

func (e *StepError) Error() string {
	return "step '" + e.step + "' failed: " + e.err.Error()
}

func (e *StepError) Unwrap() error {
	return e.err
}

func NewStepError(step string, err error) *StepError {
	return &StepError{
		step: step,
		err:  err,
	}
}

var _ error = &StepError{}
