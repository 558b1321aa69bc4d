// Package python implements the full grading pipeline for Python
// submissions: security screening, harness generation, per-test process
// execution, output parsing and comparison with partial credit.
package python

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/dto"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/runner"
	"github.com/Dakshbumb/Cygnusa-Guardian/pkg/utils"
)

type Runner struct {
	cfg Config
}

var _ runner.Runner = (*Runner)(nil)

func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg.withDefaults()}
}

// Grade runs the submission against every test case, strictly sequentially,
// one hermetic OS process per case. A security violation short-circuits
// before any process is spawned; any other failure is terminal for its own
// test case only.
func (r *Runner) Grade(ctx context.Context, req dto.GradeRequest) *models.ExecutionEvidence {
	if reason := screen(req.Code, r.cfg.BannedModules); reason != "" {
		slog.Debug("submission blocked by screener",
			"question_id", req.QuestionID, "reason", reason)
		return runner.UniformFailure(req, models.ActualBlocked, reason)
	}

	results := make([]models.TestCaseResult, 0, len(req.TestCases))
	for _, tc := range req.TestCases {
		results = append(results, r.runSingleTest(ctx, req.Code, tc))
	}
	return runner.BuildEvidence(req, results)
}

func (r *Runner) runSingleTest(ctx context.Context, code string, tc models.TestCase) models.TestCaseResult {
	result := models.TestCaseResult{
		Input:    tc.Input.String(),
		Expected: tc.Expected.String(),
	}

	harness := buildHarness(code, tc.Input, r.cfg.MemoryLimitMB)
	res := r.runHarness(ctx, harness)

	if res.timedOut {
		result.Actual = models.ActualTimeout
		result.TimeMS = r.cfg.Timeout.Seconds() * 1000
		result.Error = fmt.Sprintf("Execution exceeded %.0fs time limit", r.cfg.Timeout.Seconds())
		return result
	}
	if res.launchErr != nil {
		result.Actual = models.ActualExecutionError
		result.Error = utils.Truncate(res.launchErr.Error(), 200)
		return result
	}

	actual, errMsg := parseOutput(res.stdout, res.stderr, res.exitCode, r.cfg.MaxOutputLen, r.cfg.MaxStderrLen)
	passed, similarity, partialCredit := grade(actual, tc.Expected)

	result.Actual = actual.String()
	result.Passed = passed
	result.TimeMS = utils.Round2(res.elapsed.Seconds() * 1000)
	result.Error = errMsg
	if !passed {
		score := utils.Round2(similarity)
		result.SimilarityScore = &score
		result.PartialCredit = partialCredit
	}
	return result
}
