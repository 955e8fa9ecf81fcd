package cmd

import (
	"fmt"

	"github.com/jjtimmons/contig/internal/assemble"
	"github.com/jjtimmons/contig/internal/file"
	"github.com/spf13/cobra"
)

// assembleCmd is for merging reads into a single contig
var assembleCmd = &cobra.Command{
	Use:                        "assemble [read] ... [readN]",
	Short:                      "Assemble overlapping reads into a contig",
	RunE:                       runAssemble,
	SuggestionsMinimumDistance: 3,
	Long: `Assemble reads into a single contig. Each round every pair of reads is
aligned and the best pair that overlaps at their ends is merged. Reads are
either passed as arguments or read from a txt, FASTA or FASTQ file.

Assembly fails if a round has no pair of reads that overlap at their ends.`,
	Aliases: []string{"merge"},
}

func init() {
	assembleCmd.Flags().StringP("in", "i", "", "input file of reads (txt, fasta, fastq)")
	assembleCmd.Flags().StringP("out", "o", "", "output file for the contig (txt, fasta)")

	RootCmd.AddCommand(assembleCmd)
}

func runAssemble(cmd *cobra.Command, args []string) error {
	reads, err := readsInput(cmd, args)
	if err != nil {
		return err
	}

	contig, err := assemble.Assemble(reads, assemblyOptions())
	if err != nil {
		return err
	}
	logger.Info("assembled contig", "reads", len(reads), "length", len(contig))

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return file.WriteSequence(out, contig)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), contig)
	return err
}

func assemblyOptions() assemble.Options {
	return assemble.Options{
		Scoring: conf.NucleotideScoring(),
		Workers: conf.Assembly.Workers,
		Logger:  logger,
	}
}
