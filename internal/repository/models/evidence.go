package models

import "time"

// Sentinel values carried in TestCaseResult.Actual when a test case resolves
// to a terminal state other than a real program output.
const (
	ActualTimeout        = "TIMEOUT"
	ActualEnvError       = "ENV_ERROR"
	ActualUnsupported    = "UNSUPPORTED"
	ActualBlocked        = "BLOCKED"
	ActualExecutionError = "EXECUTION_ERROR"
	ActualError          = "ERROR"
)

// TestCaseResult is the terminal grade of one test case. It is created once
// by the executor/comparator pipeline and never mutated afterwards.
type TestCaseResult struct {
	Input    string  `json:"input"`
	Expected string  `json:"expected"`
	Actual   string  `json:"actual"`
	Passed   bool    `json:"passed"`
	TimeMS   float64 `json:"time_ms"`
	Error    string  `json:"error,omitempty"`
	// SimilarityScore is set only when the case is not an exact pass.
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
	PartialCredit   bool     `json:"partial_credit,omitempty"`
}

// ExecutionEvidence is the complete grading record for one submission.
// It is always fully populated: a submission that failed every test has the
// same shape as one that passed them all. The timing metadata at the bottom
// is stamped by the caller after grading, never by the engine.
type ExecutionEvidence struct {
	QuestionID    string           `json:"question_id"`
	QuestionTitle string           `json:"question_title"`
	Language      string           `json:"language"`
	SubmittedCode string           `json:"submitted_code"`
	TestCases     []TestCaseResult `json:"test_cases"`
	PassRate      float64          `json:"pass_rate"`
	AvgTimeMS     float64          `json:"avg_time_ms"`
	TotalTests    int              `json:"total_tests"`

	TimeStarted     string `json:"time_started,omitempty"`
	TimeSubmitted   string `json:"time_submitted,omitempty"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// Stamp records when grading started and finished. Duration has seconds
// granularity and reports at least 1 so a sub-second grade is never zero.
func (e *ExecutionEvidence) Stamp(started, submitted time.Time) {
	e.TimeStarted = started.Format(time.RFC3339)
	e.TimeSubmitted = submitted.Format(time.RFC3339)
	d := int(submitted.Sub(started).Seconds())
	if d < 1 {
		d = 1
	}
	e.DurationSeconds = d
}
