package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mind-engage/assessment-engine/internal/scoring"
)

var instrument string

var scoreCmd = &cobra.Command{
	Use:   "score [responses.json]",
	Short: "Score a raw-response blob for one instrument",
	Long: `Score reads a raw-response JSON blob (a file argument, or stdin when
the argument is "-" or omitted) and prints the scoring result envelope.

  scorectl score --instrument mbti attempt-123.json
  cat attempt-123.json | scorectl score -i gardner`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&instrument, "instrument", "i", "", "instrument name (mbti|holland|disc|gardner|neo|pvq|swanson|...)")
	_ = scoreCmd.MarkFlagRequired("instrument")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	blob, err := readInput(args)
	if err != nil {
		return err
	}

	res := scoring.CalculateJSON(instrument, blob)

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(res, "", "  ")
	} else {
		out, err = json.Marshal(res)
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	out = append(out, '\n')

	if output != "" {
		if err := os.WriteFile(output, out, 0o644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	} else if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}

	// Surface scoring failures through the exit code so pipelines notice.
	if res.Status == scoring.StatusError {
		return fmt.Errorf("scoring failed: %s", res.Message)
	}
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}
	return blob, nil
}
