package dto

import "github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"

// GradeRequest is the engine-facing description of one submission to grade.
type GradeRequest struct {
	QuestionID    string
	QuestionTitle string
	Language      string
	Code          string
	TestCases     []models.TestCase
}
