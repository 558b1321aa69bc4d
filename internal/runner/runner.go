package runner

import (
	"context"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/dto"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
)

// Runner grades one submission against its test cases. Implementations never
// return an error: every failure mode, including host-side ones, is encoded
// in the evidence record so that callers always receive a complete, terminal
// result for every test case.
type Runner interface {
	Grade(ctx context.Context, req dto.GradeRequest) *models.ExecutionEvidence
}
