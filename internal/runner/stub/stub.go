// Package stub holds the runners for languages the sandbox cannot execute:
// toolchains that are not installed and identifiers nobody registered.
package stub

import (
	"context"
	"fmt"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/dto"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/runner"
)

// EnvError resolves every test case to ENV_ERROR without spawning anything:
// the language needs a compiler the sandbox does not ship.
type EnvError struct {
	compiler string
}

var _ runner.Runner = (*EnvError)(nil)

func NewEnvError(compiler string) *EnvError {
	return &EnvError{compiler: compiler}
}

func (s *EnvError) Grade(_ context.Context, req dto.GradeRequest) *models.ExecutionEvidence {
	msg := fmt.Sprintf("Environment Error: %s compiler not found in sandbox.", s.compiler)
	return runner.UniformFailure(req, models.ActualEnvError, msg)
}

// Unsupported resolves every test case to UNSUPPORTED for language
// identifiers no runner is registered for.
type Unsupported struct{}

var _ runner.Runner = Unsupported{}

func (Unsupported) Grade(_ context.Context, req dto.GradeRequest) *models.ExecutionEvidence {
	msg := fmt.Sprintf("Error: Language '%s' is not supported by the sandbox.", req.Language)
	return runner.UniformFailure(req, models.ActualUnsupported, msg)
}
