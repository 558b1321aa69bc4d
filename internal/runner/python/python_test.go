package python

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/dto"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
	"github.com/Dakshbumb/Cygnusa-Guardian/pkg/values"
)

// Tests in this file spawn a real interpreter and are skipped when none is
// installed. The screener tests above run everywhere.

var pythonBin string

func init() {
	for _, bin := range []string{"python3", "python"} {
		if _, err := exec.LookPath(bin); err == nil {
			pythonBin = bin
			return
		}
	}
}

func liveConfig(t *testing.T) Config {
	t.Helper()
	if pythonBin == "" {
		t.Skip("no python interpreter available")
	}
	cfg := DefaultConfig()
	cfg.PythonBin = pythonBin
	return cfg
}

func request(code string, cases []models.TestCase) dto.GradeRequest {
	return dto.GradeRequest{
		QuestionID:    "q1",
		QuestionTitle: "Test Question",
		Language:      "python",
		Code:          code,
		TestCases:     cases,
	}
}

func numCase(input, expected float64) models.TestCase {
	return models.TestCase{
		Input:    values.NewNumber(input),
		Expected: values.NewNumber(expected),
	}
}

func TestGradeFibonacciEndToEnd(t *testing.T) {
	r := NewRunner(liveConfig(t))
	code := "def solution(n):\n" +
		"    a, b = 0, 1\n" +
		"    for _ in range(n):\n" +
		"        a, b = b, a + b\n" +
		"    return a"
	cases := []models.TestCase{
		numCase(0, 0), numCase(1, 1), numCase(5, 5), numCase(10, 55),
	}

	evidence := r.Grade(context.Background(), request(code, cases))

	if evidence.TotalTests != 4 || len(evidence.TestCases) != 4 {
		t.Fatalf("expected 4 results, got total=%d len=%d", evidence.TotalTests, len(evidence.TestCases))
	}
	if evidence.PassRate != 100.0 {
		t.Fatalf("expected pass rate 100, got %v", evidence.PassRate)
	}
	for i, tc := range evidence.TestCases {
		if !tc.Passed {
			t.Fatalf("case %d failed: actual=%q error=%q", i, tc.Actual, tc.Error)
		}
		if tc.SimilarityScore != nil {
			t.Fatalf("case %d: similarity must be absent on an exact pass", i)
		}
		if tc.TimeMS < 0 {
			t.Fatalf("case %d: negative time %v", i, tc.TimeMS)
		}
	}
}

func TestGradeReverseString(t *testing.T) {
	r := NewRunner(liveConfig(t))
	code := "def solution(s):\n    return s[::-1]"
	cases := []models.TestCase{{
		Input:    values.NewString("abc"),
		Expected: values.NewString("cba"),
	}}

	evidence := r.Grade(context.Background(), request(code, cases))

	if !evidence.TestCases[0].Passed {
		t.Fatalf("expected pass, got actual=%q error=%q",
			evidence.TestCases[0].Actual, evidence.TestCases[0].Error)
	}
}

func TestGradeMapInput(t *testing.T) {
	r := NewRunner(liveConfig(t))
	code := "def solution(data):\n" +
		"    nums = data['nums']\n" +
		"    target = data['target']\n" +
		"    return any(nums[i] + nums[j] == target\n" +
		"               for i in range(len(nums))\n" +
		"               for j in range(i + 1, len(nums)))"
	input := values.NewMap(
		values.Entry{Key: "nums", Value: values.NewList(
			values.NewNumber(1), values.NewNumber(2), values.NewNumber(3), values.NewNumber(4))},
		values.Entry{Key: "target", Value: values.NewNumber(5)},
	)
	cases := []models.TestCase{{Input: input, Expected: values.NewBool(true)}}

	evidence := r.Grade(context.Background(), request(code, cases))

	if !evidence.TestCases[0].Passed {
		t.Fatalf("expected pass, got actual=%q error=%q",
			evidence.TestCases[0].Actual, evidence.TestCases[0].Error)
	}
}

func TestGradeTimeoutContainment(t *testing.T) {
	cfg := liveConfig(t)
	cfg.Timeout = 1 * time.Second
	r := NewRunner(cfg)
	code := "def solution(n):\n    while True:\n        pass"

	start := time.Now()
	evidence := r.Grade(context.Background(), request(code, []models.TestCase{numCase(1, 1)}))
	elapsed := time.Since(start)

	if elapsed > 5*time.Second {
		t.Fatalf("grading took %v, timeout did not contain the hang", elapsed)
	}
	tc := evidence.TestCases[0]
	if tc.Actual != models.ActualTimeout {
		t.Fatalf("expected TIMEOUT, got %q", tc.Actual)
	}
	if tc.TimeMS != 1000 {
		t.Fatalf("expected time_ms == 1000, got %v", tc.TimeMS)
	}
	if tc.Passed {
		t.Fatal("timed out case must not pass")
	}
}

func TestGradeMemoryLimit(t *testing.T) {
	r := NewRunner(liveConfig(t))
	// Allocates well past the default 128 MB address-space cap. Where the
	// platform refuses RLIMIT_AS the allocation simply succeeds, so a pass
	// means the cap is unenforceable here, not that the contract is broken.
	// Chunk sizes vary with the loop index so every element is a distinct
	// megabyte-scale allocation rather than one shared constant.
	code := "def solution(n):\n" +
		"    return len([' ' * (1024 * 1024 + i) for i in range(n)])"

	evidence := r.Grade(context.Background(), request(code, []models.TestCase{numCase(256, 256)}))

	tc := evidence.TestCases[0]
	if tc.Passed {
		t.Skip("address-space limit not enforced on this platform")
	}
	if tc.Actual != models.ActualError {
		t.Fatalf("expected ERROR, got %q (error=%q)", tc.Actual, tc.Error)
	}
	if tc.Error == "" {
		t.Fatal("expected a populated error message")
	}
}

func TestGradeSecurityShortCircuit(t *testing.T) {
	// Interpreter path is bogus on purpose: if the screener let anything
	// through, the results would read EXECUTION_ERROR instead of BLOCKED.
	cfg := DefaultConfig()
	cfg.PythonBin = "/nonexistent/python"
	r := NewRunner(cfg)
	code := "import subprocess\ndef solution(n):\n    return n"
	cases := []models.TestCase{numCase(1, 1), numCase(2, 2)}

	evidence := r.Grade(context.Background(), request(code, cases))

	if evidence.PassRate != 0 {
		t.Fatalf("expected pass rate 0, got %v", evidence.PassRate)
	}
	if len(evidence.TestCases) != len(cases) {
		t.Fatalf("expected %d results, got %d", len(cases), len(evidence.TestCases))
	}
	for i, tc := range evidence.TestCases {
		if tc.Actual != models.ActualBlocked {
			t.Fatalf("case %d: expected BLOCKED, got %q", i, tc.Actual)
		}
		if tc.Passed {
			t.Fatalf("case %d: blocked case must not pass", i)
		}
		if tc.Error != "Restricted module detected: subprocess" {
			t.Fatalf("case %d: unexpected error %q", i, tc.Error)
		}
	}
}

func TestGradeCandidateException(t *testing.T) {
	r := NewRunner(liveConfig(t))
	code := "def solution(n):\n    raise ValueError('boom')"

	evidence := r.Grade(context.Background(), request(code, []models.TestCase{numCase(1, 1)}))

	tc := evidence.TestCases[0]
	if tc.Passed {
		t.Fatal("expected failure")
	}
	if tc.Actual != models.ActualError {
		t.Fatalf("expected ERROR, got %q", tc.Actual)
	}
	if tc.Error == "" {
		t.Fatal("expected a populated error message")
	}
}

func TestGradeCrashDoesNotCorruptSiblings(t *testing.T) {
	r := NewRunner(liveConfig(t))
	code := "def solution(n):\n" +
		"    if n == 0:\n" +
		"        raise ValueError('boom')\n" +
		"    return n"
	cases := []models.TestCase{numCase(0, 0), numCase(5, 5)}

	evidence := r.Grade(context.Background(), request(code, cases))

	if len(evidence.TestCases) != 2 {
		t.Fatalf("expected 2 results, got %d", len(evidence.TestCases))
	}
	if evidence.TestCases[0].Passed {
		t.Fatal("crashing case must fail")
	}
	if !evidence.TestCases[1].Passed {
		t.Fatalf("sibling case corrupted: actual=%q error=%q",
			evidence.TestCases[1].Actual, evidence.TestCases[1].Error)
	}
}

func TestGradeNoisyStdout(t *testing.T) {
	r := NewRunner(liveConfig(t))
	code := "def solution(n):\n" +
		"    print('debug noise')\n" +
		"    return n"

	evidence := r.Grade(context.Background(), request(code, []models.TestCase{numCase(1, 1)}))

	tc := evidence.TestCases[0]
	if tc.Error != "Output parsing error" {
		t.Fatalf("expected output parsing error, got %q", tc.Error)
	}
}

func TestGradeNumericNearMiss(t *testing.T) {
	r := NewRunner(liveConfig(t))
	code := "def solution(n):\n    return 104"

	evidence := r.Grade(context.Background(), request(code, []models.TestCase{numCase(1, 100)}))

	tc := evidence.TestCases[0]
	if tc.Passed {
		t.Fatal("expected failure")
	}
	if tc.SimilarityScore == nil || *tc.SimilarityScore < 75 {
		t.Fatalf("expected similarity >= 75, got %v", tc.SimilarityScore)
	}
	if !tc.PartialCredit {
		t.Fatal("expected partial credit")
	}
}

func TestGradeNulByteInput(t *testing.T) {
	r := NewRunner(liveConfig(t))
	code := "def solution(s):\n    return len(s)"
	cases := []models.TestCase{{
		Input:    values.NewString("a\x00b"),
		Expected: values.NewNumber(3),
	}}

	evidence := r.Grade(context.Background(), request(code, cases))

	tc := evidence.TestCases[0]
	if !tc.Passed {
		t.Fatalf("expected pass, got actual=%q error=%q", tc.Actual, tc.Error)
	}
}

func TestGradeMissingEntryPoint(t *testing.T) {
	r := NewRunner(liveConfig(t))
	code := "def answer(n):\n    return n"

	evidence := r.Grade(context.Background(), request(code, []models.TestCase{numCase(1, 1)}))

	tc := evidence.TestCases[0]
	if tc.Passed {
		t.Fatal("expected failure when solution() is missing")
	}
	if tc.Actual != models.ActualError {
		t.Fatalf("expected ERROR, got %q", tc.Actual)
	}
}
