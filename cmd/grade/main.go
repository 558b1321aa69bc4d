// The grade command grades a local submission and prints the evidence
// record, for trying out questions without the queue infrastructure.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Dakshbumb/Cygnusa-Guardian/internal/audit"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/files"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/grader"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/questions"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/dto"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/repository/models"
	"github.com/Dakshbumb/Cygnusa-Guardian/internal/runner/python"
)

type gradeOutput struct {
	Evidence    *models.ExecutionEvidence `json:"evidence"`
	Fingerprint string                    `json:"fingerprint"`
}

func main() {
	var (
		codePath       string
		language       string
		questionID     string
		testsPath      string
		pythonBin      string
		timeoutSeconds int
	)

	rootCmd := &cobra.Command{
		Use:   "grade",
		Short: "Grade a submission locally and print the evidence record",
		Long: "Runs a candidate source file against the test cases of a built-in\n" +
			"question (--question) or a local test-case bundle (--tests) and prints\n" +
			"the full evidence record with its audit fingerprint.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := os.ReadFile(codePath)
			if err != nil {
				return fmt.Errorf("read submission: %w", err)
			}

			req := dto.GradeRequest{
				QuestionID: uuid.NewString(),
				Language:   language,
				Code:       string(code),
			}

			switch {
			case questionID != "":
				q, ok := questions.Get(questionID)
				if !ok {
					return fmt.Errorf("unknown question %q, available: %s",
						questionID, strings.Join(questions.IDs(), ", "))
				}
				req.QuestionID = q.ID
				req.QuestionTitle = q.Title
				req.TestCases = q.TestCases
			case testsPath != "":
				data, err := os.ReadFile(testsPath)
				if err != nil {
					return fmt.Errorf("read test cases: %w", err)
				}
				cases, err := files.DecodeBundle(data)
				if err != nil {
					return err
				}
				req.TestCases = cases
			default:
				return fmt.Errorf("either --question or --tests is required")
			}

			pyCfg := python.DefaultConfig()
			pyCfg.PythonBin = pythonBin
			pyCfg.Timeout = time.Duration(timeoutSeconds) * time.Second
			engine := grader.NewDefaultEngine(pyCfg)

			started := time.Now().UTC()
			evidence := engine.Execute(context.Background(), req)
			evidence.Stamp(started, time.Now().UTC())
			fingerprint, err := audit.Fingerprint(evidence)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(gradeOutput{
				Evidence:    evidence,
				Fingerprint: fingerprint,
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&codePath, "code", "c", "", "path to the submission source file")
	rootCmd.Flags().StringVarP(&language, "language", "l", "python", "submission language")
	rootCmd.Flags().StringVarP(&questionID, "question", "q", "", "built-in question id")
	rootCmd.Flags().StringVarP(&testsPath, "tests", "t", "", "path to a JSON test-case bundle")
	rootCmd.Flags().StringVar(&pythonBin, "python", "python3", "python interpreter to launch")
	rootCmd.Flags().IntVar(&timeoutSeconds, "timeout", 10, "per-test wall-clock budget in seconds")
	_ = rootCmd.MarkFlagRequired("code")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
