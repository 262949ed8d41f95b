package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/jobmatch"
)

var matchCmd = &cobra.Command{
	Use:   "match --result result.json [posting.txt]",
	Short: "Compare a saved diagnosis against a job posting",
	Long: "Reads a diagnosis result (or its job-match snapshot) as JSON and a job posting " +
		"from a file or stdin, then prints the job-match verdict.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resultPath, _ := cmd.Flags().GetString("result")
		raw, err := os.ReadFile(resultPath)
		if err != nil {
			return fmt.Errorf("read result: %w", err)
		}
		var snap diagnosis.Snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return fmt.Errorf("decode result: %w", err)
		}

		var posting []byte
		if len(args) == 1 {
			posting, err = os.ReadFile(args[0])
		} else {
			posting, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return fmt.Errorf("read posting: %w", err)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := cfg.Logger(os.Stderr)
		advisor, err := buildAdvisor(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		res, err := advisor.Analyze(cmd.Context(), jobmatch.Request{
			JobDescription: string(posting),
			UserProfile:    snap,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		printMatch(out, res)
		return nil
	},
}

func printMatch(w io.Writer, r *jobmatch.Result) {
	fmt.Fprintf(w, "Match: %s\n", strings.ToUpper(string(r.MatchLevel)))
	fmt.Fprintf(w, "%s\n\n", r.MatchDescription)
	fmt.Fprintln(w, "Matching points:")
	for _, p := range r.MatchingPoints {
		fmt.Fprintf(w, "  + %s\n", p)
	}
	fmt.Fprintln(w, "Gaps:")
	for _, p := range r.GapPoints {
		fmt.Fprintf(w, "  - %s\n", p)
	}
	fmt.Fprintf(w, "\nAdvice: %s\n", r.Advice)
	fmt.Fprintf(w, "Estimated TOEIC: %s (posting expects %s)\n", r.EstimatedToeicRange, r.RequiredToeicEstimate)
}

func init() {
	matchCmd.Flags().String("result", "", "Path to a diagnosis result JSON")
	matchCmd.Flags().Bool("json", false, "Print the verdict as JSON")
	_ = matchCmd.MarkFlagRequired("result")
}
