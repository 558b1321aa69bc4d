package models

// GradeTask is the queue message requesting one submission grade. Test cases
// are supplied inline or, for larger banks, as an object-storage key.
type GradeTask struct {
	ID            string     `json:"id"`
	QuestionID    string     `json:"question_id"`
	QuestionTitle string     `json:"question_title"`
	Language      string     `json:"language"`
	Code          string     `json:"code"`
	TestCases     []TestCase `json:"test_cases,omitempty"`
	TestCasesKey  string     `json:"test_cases_key,omitempty"`
}

// GradeResult is the queue reply. Evidence is nil only when the task itself
// was unusable (e.g. its test-case bundle could not be loaded), in which
// case Error says why.
type GradeResult struct {
	ID          string             `json:"id"`
	Evidence    *ExecutionEvidence `json:"evidence,omitempty"`
	Fingerprint string             `json:"fingerprint,omitempty"`
	Error       string             `json:"error,omitempty"`
}
