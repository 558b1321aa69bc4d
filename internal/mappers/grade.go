package mappers

import (
	"log/slog"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/audit"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/dto"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
)

// TaskToRequest converts a queue task into the engine-facing grade request.
// The resolved test cases are passed separately because they may have been
// fetched from object storage rather than carried inline.
func TaskToRequest(task *models.GradeTask, cases []models.TestCase) dto.GradeRequest {
	return dto.GradeRequest{
		QuestionID:    task.QuestionID,
		QuestionTitle: task.QuestionTitle,
		Language:      task.Language,
		Code:          task.Code,
		TestCases:     cases,
	}
}

// EvidenceToResult wraps a finished grade for the response queue, attaching
// the audit fingerprint. A fingerprint failure is logged, not fatal: the
// evidence itself is still delivered.
func EvidenceToResult(taskID string, ev *models.ExecutionEvidence) *models.GradeResult {
	result := &models.GradeResult{ID: taskID, Evidence: ev}
	fp, err := audit.Fingerprint(ev)
	if err != nil {
		slog.Error("failed to fingerprint evidence", "task_id", taskID, "error", err)
		return result
	}
	result.Fingerprint = fp
	return result
}
