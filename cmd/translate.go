package cmd

import (
	"github.com/jjtimmons/contig/internal/file"
	"github.com/jjtimmons/contig/internal/gene"
	"github.com/spf13/cobra"
)

// translateCmd is for translating the open reading frames of a DNA sequence
var translateCmd = &cobra.Command{
	Use:                        "translate [dna]",
	Short:                      "Translate the open reading frames of a DNA sequence to proteins",
	Args:                       cobra.MaximumNArgs(1),
	RunE:                       runTranslate,
	SuggestionsMinimumDistance: 3,
	Long: `Find the open reading frames of a DNA sequence, as with 'contig transcribe',
and translate each to its amino acids. The start codon is left off and the
first stop codon ends each protein.`,
	Aliases: []string{"proteins"},
}

func init() {
	translateCmd.Flags().StringP("in", "i", "", "input file with the DNA sequence")
	translateCmd.Flags().StringP("out", "o", "", "output file for the protein table (csv, tsv, txt)")

	RootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	dna, err := dnaInput(cmd, args)
	if err != nil {
		return err
	}

	t, err := gene.Transcribe(dna, conf.ORF.Reverse, conf.ORF.MinProteinLength)
	if err != nil {
		return err
	}
	proteins, err := gene.TranslateORFs(t.ORFs)
	if err != nil {
		return err
	}
	logger.Info("translated ORFs", "proteins", len(proteins))

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return file.WriteTable(out, proteins)
	}
	return printTable(cmd.OutOrStdout(), []string{"strand", "position", "protein"}, proteins)
}
