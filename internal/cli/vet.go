package cli

import (
	"fmt"
	"strings"

	"github.com/skanade/panvet/internal/classify"
	"github.com/skanade/panvet/internal/model"
	"github.com/skanade/panvet/internal/normalize"
	"github.com/skanade/panvet/internal/report"
	"github.com/spf13/cobra"
)

var vetQuiet bool

// vetCmd classifies values given directly on the command line
var vetCmd = &cobra.Command{
	Use:   "vet <value>...",
	Short: "Vet PAN values given as arguments",
	Long: `Vet cleans and classifies values passed directly on the command line,
printing one verdict per cleaned candidate.

Exit status is 0 when every candidate is valid, 1 otherwise.

Example:
  panvet vet XKPLR9382Q
  panvet vet abcde1234f "  AABCD1234E  "`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVet,
}

func init() {
	rootCmd.AddCommand(vetCmd)

	vetCmd.Flags().BoolVarP(&vetQuiet, "quiet", "q", false, "suppress output, verdict via exit status only")
}

func runVet(cmd *cobra.Command, args []string) error {
	raws := make([]model.RawRecord, len(args))
	for i, arg := range args {
		raws[i] = model.NewRawRecord(arg)
	}

	candidates := normalize.Candidates(raws)
	classifier := classify.NewClassifier()
	results := classifier.ClassifyAll(candidates)

	invalid := 0
	for _, result := range results {
		if result.Verdict != model.VerdictValid {
			invalid++
		}
		if vetQuiet {
			continue
		}
		if len(result.Reasons) == 0 {
			fmt.Printf("%s: %s\n", result.Candidate, result.Verdict)
			continue
		}
		reasons := make([]string, len(result.Reasons))
		for i, reason := range result.Reasons {
			reasons[i] = string(reason)
		}
		fmt.Printf("%s: %s (%s)\n", result.Candidate, result.Verdict, strings.Join(reasons, ", "))
	}

	summary := report.NewSummarizer().Summarize(len(raws), len(candidates), results)
	if err := summary.Check(); err != nil {
		return err
	}

	if !vetQuiet && len(candidates) < len(raws) {
		fmt.Printf("(%d of %d inputs discarded or merged during cleaning)\n", len(raws)-len(candidates), len(raws))
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d candidates invalid", invalid, len(candidates))
	}
	return nil
}
