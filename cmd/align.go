package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/jjtimmons/contig/internal/align"
	"github.com/spf13/cobra"
)

// alignCmd is for aligning two sequences against one another
var alignCmd = &cobra.Command{
	Use:                        "align [seq1] [seq2]",
	Short:                      "Find the best local alignment between two sequences",
	Args:                       cobra.ExactArgs(2),
	RunE:                       runAlign,
	SuggestionsMinimumDistance: 2,
	Long: `Align two sequences with a local alignment that favors overlaps
near the start of both sequences. Reports the alignment's score, identity,
similarity and the aligned fragment.

DNA is scored +1 for a match, -4 for a mismatch and -4 per gap by default
(see the scoring settings). Proteins are scored with BLOSUM62.`,
	Aliases: []string{"pairwise"},
}

func init() {
	alignCmd.Flags().BoolP("protein", "p", false, "align amino acid sequences with BLOSUM62")
	alignCmd.Flags().BoolP("show", "s", false, "print the aligned sequences")
	alignCmd.Flags().Int("width", 80, "columns per line of the printed alignment")

	RootCmd.AddCommand(alignCmd)
}

func runAlign(cmd *cobra.Command, args []string) error {
	protein, _ := cmd.Flags().GetBool("protein")
	show, _ := cmd.Flags().GetBool("show")
	width, _ := cmd.Flags().GetInt("width")

	scoring := conf.NucleotideScoring()
	if protein {
		scoring = align.Blosum62()
	}

	r, err := align.Align(args[0], args[1], scoring)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if show {
		_, err := fmt.Fprint(out, r.Format(scoring, width))
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
	fmt.Fprintf(w, "score\tidentity\tsimilarity\tfragment\n")
	fmt.Fprintf(w, "%d\t%.2f\t%.2f\t%s\n", r.Score, r.Identity, r.Similarity, r.Fragment())
	return w.Flush()
}
