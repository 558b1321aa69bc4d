package python

import (
	"encoding/json"
	"strings"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
	"github.com/Dakshbumb/Cygnusa-Guardian/pkg/utils"
	"github.com/Dakshbumb/Cygnusa-Guardian/pkg/values"
)

type harnessOutput struct {
	Result values.Value `json:"result"`
}

// parseOutput interprets the harness's single-line IPC contract. On a clean
// exit the stdout line must decode as {"result": <value>}; anything else
// falls back to the raw trimmed stdout with a parse-error flag. A non-zero
// exit reports the stderr excerpt, or a generic message when stderr is
// empty.
func parseOutput(stdout, stderr string, exitCode, maxOutputLen, maxStderrLen int) (values.Value, string) {
	if exitCode == exitOK {
		var out harnessOutput
		if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &out); err != nil {
			raw := utils.Truncate(strings.TrimSpace(stdout), maxOutputLen)
			return values.NewString(raw), "Output parsing error"
		}
		return out.Result, ""
	}

	errMsg := utils.Truncate(strings.TrimSpace(stderr), maxStderrLen)
	if errMsg == "" {
		errMsg = "Unknown error"
	}
	return values.NewString(models.ActualError), errMsg
}
