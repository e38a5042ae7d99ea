package hook

import (
	"errors"
	"fmt"

	"github.com/hehos/jetson-hooks/internal/bitbake"
	"github.com/hehos/jetson-hooks/internal/config"
)

// Exit codes returned by jetson-hook.
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitConfigError = 2
)

// Step names a hook step.
type Step string

const (
	StepInit      Step = "init build directory"
	StepLocalConf Step = "configure local.conf"
	StepLayers    Step = "register layers"
	StepFetch     Step = "fetch sources"
)

// StepError records which step failed.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for an error returned by Run.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *bitbake.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, config.ErrInvalid) {
		return ExitConfigError
	}
	return ExitFailure
}
