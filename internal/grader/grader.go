// Package grader is the engine facade: a registry of per-language runners
// behind one contract. Adding a language means registering a new runner, not
// touching existing ones.
package grader

import (
	"context"
	"strings"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/dto"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/runner"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/runner/python"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/runner/stub"
)

type Engine struct {
	runners     map[string]runner.Runner
	unsupported runner.Runner
}

func NewEngine() *Engine {
	return &Engine{
		runners:     make(map[string]runner.Runner),
		unsupported: stub.Unsupported{},
	}
}

// NewDefaultEngine wires the standard language set: the Python pipeline plus
// the ENV_ERROR stubs for the toolchains the sandbox does not ship.
func NewDefaultEngine(cfg python.Config) *Engine {
	e := NewEngine()
	e.Register("python", python.NewRunner(cfg))
	e.Register("java", stub.NewEnvError("javac"))
	e.Register("cpp", stub.NewEnvError("g++"))
	return e
}

func (e *Engine) Register(language string, r runner.Runner) {
	e.runners[strings.ToLower(language)] = r
}

// Execute grades one submission. It never returns an error: the evidence
// record is always fully populated and well-formed, with exactly one
// terminal result per input test case.
func (e *Engine) Execute(ctx context.Context, req dto.GradeRequest) *models.ExecutionEvidence {
	r, ok := e.runners[strings.ToLower(req.Language)]
	if !ok {
		r = e.unsupported
	}
	return r.Grade(ctx, req)
}
