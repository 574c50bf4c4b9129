package pipelines

import "fmt"

// UnknownFlavorError is returned when a flavor is not handled by the pipeline.
type UnknownFlavorError struct {
	Flavor string
}

func (e *UnknownFlavorError) Error() string {
	return "Unknown pipeline flavor " + e.Flavor
}

// StepError wraps the error returned by a pipeline step.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("pipeline step %s: %s", e.Step, e.Err.Error())
}

func (e *StepError) Unwrap() error {
	return e.Err
}
