package python

import (
	"fmt"

	"github.com/Dakshbumb/Cygnusa-Guardian/pkg/values"
)

// Exit codes of the generated harness. Anything else means the host failed
// to launch or kill the process.
const (
	exitOK             = 0
	exitCandidateError = 1
	exitMemoryExceeded = 2
)

// The harness prints exactly one JSON line on stdout; that line plus the
// exit code is the entire contract between the untrusted child and the
// trusted executor. The executor never evaluates anything beyond it.
const harnessTemplate = `import json
import sys

def _limit_resources():
    memory_limit = %d * 1024 * 1024
    try:
        import resource
        resource.setrlimit(resource.RLIMIT_AS, (memory_limit, memory_limit))
    except Exception:
        # Best effort only: some platforms refuse or lack RLIMIT_AS.
        pass

_limit_resources()

%s

try:
    test_input = %s
    result = solution(test_input)
    print(json.dumps({"result": result}))
except MemoryError:
    print(json.dumps({"error": "Memory limit exceeded"}))
    sys.exit(2)
except Exception as e:
    print(json.dumps({"error": f"{type(e).__name__}: {str(e)}"}))
    sys.exit(1)
`

// buildHarness wraps the candidate source in a self-contained program that
// applies the memory cap, binds the test input as a literal and invokes the
// required `solution` entry point.
func buildHarness(code string, input values.Value, memoryLimitMB int) string {
	return fmt.Sprintf(harnessTemplate, memoryLimitMB, code, input.Repr())
}
