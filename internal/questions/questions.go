// Package questions ships a small built-in question bank used by the CLI and
// the end-to-end tests. Production deployments load their banks from object
// storage instead.
package questions

import (
	"sort"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
	"github.com/Dakshbumb/Cygnusa-Guardian/pkg/values"
)

type Question struct {
	ID          string
	Title       string
	Description string
	Template    string
	TestCases   []models.TestCase
}

func Get(id string) (Question, bool) {
	q, ok := bank[id]
	return q, ok
}

func IDs() []string {
	ids := make([]string, 0, len(bank))
	for id := range bank {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func tc(input, expected values.Value) models.TestCase {
	return models.TestCase{Input: input, Expected: expected}
}

var bank = map[string]Question{
	"fibonacci": {
		ID:          "fibonacci",
		Title:       "Fibonacci Number",
		Description: "Return the nth Fibonacci number (0-indexed). F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2)",
		Template:    "def solution(n):\n    # Return nth Fibonacci number\n    pass",
		TestCases: []models.TestCase{
			tc(values.NewNumber(0), values.NewNumber(0)),
			tc(values.NewNumber(1), values.NewNumber(1)),
			tc(values.NewNumber(5), values.NewNumber(5)),
			tc(values.NewNumber(10), values.NewNumber(55)),
			tc(values.NewNumber(15), values.NewNumber(610)),
		},
	},
	"palindrome": {
		ID:          "palindrome",
		Title:       "Palindrome Check",
		Description: "Check if the given string is a palindrome (reads same forwards and backwards)",
		Template:    "def solution(s):\n    # Return True if palindrome, False otherwise\n    pass",
		TestCases: []models.TestCase{
			tc(values.NewString("racecar"), values.NewBool(true)),
			tc(values.NewString("hello"), values.NewBool(false)),
			tc(values.NewString("a"), values.NewBool(true)),
			tc(values.NewString("ab"), values.NewBool(false)),
			tc(values.NewString("abba"), values.NewBool(true)),
		},
	},
	"two_sum": {
		ID:          "two_sum",
		Title:       "Two Sum (Simplified)",
		Description: "Given a sorted list of numbers and a target, return True if any two numbers sum to target",
		Template:    "def solution(data):\n    # data = {'nums': [...], 'target': X}\n    # Return True if two nums sum to target\n    pass",
		TestCases: []models.TestCase{
			tc(numsTarget([]float64{1, 2, 3, 4}, 5), values.NewBool(true)),
			tc(numsTarget([]float64{1, 2, 3, 4}, 10), values.NewBool(false)),
			tc(numsTarget([]float64{2, 7, 11, 15}, 9), values.NewBool(true)),
			tc(numsTarget([]float64{1, 1, 1, 1}, 2), values.NewBool(true)),
		},
	},
	"reverse_words": {
		ID:          "reverse_words",
		Title:       "Reverse Words",
		Description: "Reverse the order of words in a sentence",
		Template:    "def solution(s):\n    # Return string with words in reverse order\n    pass",
		TestCases: []models.TestCase{
			tc(values.NewString("hello world"), values.NewString("world hello")),
			tc(values.NewString("the quick brown fox"), values.NewString("fox brown quick the")),
			tc(values.NewString("a"), values.NewString("a")),
		},
	},
}

func numsTarget(nums []float64, target float64) values.Value {
	items := make([]values.Value, len(nums))
	for i, n := range nums {
		items[i] = values.NewNumber(n)
	}
	return values.NewMap(
		values.Entry{Key: "nums", Value: values.NewList(items...)},
		values.Entry{Key: "target", Value: values.NewNumber(target)},
	)
}
