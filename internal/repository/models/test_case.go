package models

import "github.com/Dakshbumb/Cygnusa-Guardian/pkg/values"

// TestCase is one hidden test: an input handed to the candidate's entry
// point and the answer it must produce. Owned by the question bank and
// immutable for the duration of grading.
type TestCase struct {
	Input    values.Value `json:"input"`
	Expected values.Value `json:"expected"`
}
