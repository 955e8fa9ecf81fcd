package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jjtimmons/contig/internal/file"
	"github.com/jjtimmons/contig/internal/gene"
	"github.com/spf13/cobra"
)

// transcribeCmd is for finding the open reading frames of a DNA sequence
var transcribeCmd = &cobra.Command{
	Use:                        "transcribe [dna]",
	Short:                      "Find the open reading frames of a DNA sequence",
	Args:                       cobra.MaximumNArgs(1),
	RunE:                       runTranscribe,
	SuggestionsMinimumDistance: 3,
	Long: `Transcribe a DNA sequence to mRNA and find its open reading frames: a
start codon followed by an in-frame stop codon, in any of the three frames
of each strand. Only ORFs long enough to encode --min-protein-length amino
acids are kept.

The sequence is passed as an argument, either directly or as a path to a
txt, FASTA or FASTQ file. Tables are written as csv, tsv or txt.`,
	Aliases: []string{"orfs"},
}

func init() {
	transcribeCmd.Flags().StringP("in", "i", "", "input file with the DNA sequence")
	transcribeCmd.Flags().StringP("out", "o", "", "output file for the ORF table (csv, tsv, txt)")
	transcribeCmd.Flags().BoolP("show", "s", false, "print the mRNA of both strands")

	RootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	dna, err := dnaInput(cmd, args)
	if err != nil {
		return err
	}

	t, err := gene.Transcribe(dna, conf.ORF.Reverse, conf.ORF.MinProteinLength)
	if err != nil {
		return err
	}
	logger.Info("found ORFs", "forward", len(t.Strand(gene.Forward)), "reverse", len(t.Strand(gene.Reverse)))

	if show, _ := cmd.Flags().GetBool("show"); show {
		fmt.Fprintf(cmd.OutOrStdout(), "forward mRNA: %s\nreverse mRNA: %s\n\n", t.Forward, t.Reverse)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return file.WriteTable(out, t.ORFs)
	}
	return printTable(cmd.OutOrStdout(), []string{"strand", "position", "mrna"}, t.ORFs)
}

// printTable writes rows to w as aligned columns under a header.
func printTable[T file.Row](w io.Writer, header []string, rows []T) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r.Row(), "\t"))
	}
	return tw.Flush()
}
