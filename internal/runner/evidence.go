package runner

import (
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/dto"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
	"github.com/Dakshbumb/Cygnusa-Guardian/pkg/utils"
)

// BuildEvidence folds per-test results into the submission-level record.
// A passed case contributes 1 to the score, a partial-credit case
// similarity/100, anything else 0.
func BuildEvidence(req dto.GradeRequest, results []models.TestCaseResult) *models.ExecutionEvidence {
	var score, totalTime float64
	for _, r := range results {
		switch {
		case r.Passed:
			score++
		case r.PartialCredit && r.SimilarityScore != nil:
			score += *r.SimilarityScore / 100
		}
		totalTime += r.TimeMS
	}

	var passRate, avgTime float64
	if len(results) > 0 {
		passRate = utils.Round2(score / float64(len(results)) * 100)
		avgTime = utils.Round2(totalTime / float64(len(results)))
	}

	return &models.ExecutionEvidence{
		QuestionID:    req.QuestionID,
		QuestionTitle: req.QuestionTitle,
		Language:      req.Language,
		SubmittedCode: req.Code,
		TestCases:     results,
		PassRate:      passRate,
		AvgTimeMS:     avgTime,
		TotalTests:    len(results),
	}
}

// UniformFailure resolves every test case of the request to the same
// terminal sentinel. Used for pre-execution short circuits: security
// violations, missing toolchains and unsupported languages.
func UniformFailure(req dto.GradeRequest, sentinel, errMsg string) *models.ExecutionEvidence {
	results := make([]models.TestCaseResult, 0, len(req.TestCases))
	for _, tc := range req.TestCases {
		results = append(results, models.TestCaseResult{
			Input:    tc.Input.String(),
			Expected: tc.Expected.String(),
			Actual:   sentinel,
			Passed:   false,
			TimeMS:   0,
			Error:    errMsg,
		})
	}
	return BuildEvidence(req, results)
}
