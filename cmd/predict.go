package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/jjtimmons/contig/internal/blast"
	"github.com/jjtimmons/contig/internal/file"
	"github.com/jjtimmons/contig/internal/predict"
	"github.com/spf13/cobra"
)

// predictCmd is for going from reads to predicted proteins
var predictCmd = &cobra.Command{
	Use:                        "predict",
	Short:                      "Assemble reads and predict the proteins they encode",
	RunE:                       runPredict,
	SuggestionsMinimumDistance: 3,
	Long: `Assemble reads into a contig, find its open reading frames and translate
them. With --search, each protein is searched against a remote BLAST
database and the accessions of similar proteins are added to the table.

Searches are slow: NCBI is polled at most once a minute (see the blast
settings) and results are cached between runs.`,
}

func init() {
	predictCmd.Flags().StringP("in", "i", "", "input file of reads (txt, fasta, fastq)")
	predictCmd.Flags().StringP("out", "o", "", "output file for the protein table (csv, tsv, txt)")
	predictCmd.Flags().Bool("search", false, "search proteins against the BLAST database")
	predictCmd.Flags().Bool("no-cache", false, "ignore cached search results")

	RootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	reads, err := readsInput(cmd, args)
	if err != nil {
		return err
	}

	opts := predict.Options{
		Assembly:         assemblyOptions(),
		IncludeReverse:   conf.ORF.Reverse,
		MinProteinLength: conf.ORF.MinProteinLength,
		Logger:           logger,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if search, _ := cmd.Flags().GetBool("search"); search {
		noCache, _ := cmd.Flags().GetBool("no-cache")
		opts.Searcher = searchClient(noCache)

		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.BLAST.Timeout)
		defer cancel()
	}

	result, err := predict.Run(ctx, reads, opts)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if opts.Searcher == nil {
		if out != "" {
			return file.WriteTable(out, result.Proteins)
		}
		return printTable(cmd.OutOrStdout(), []string{"strand", "position", "protein"}, result.Proteins)
	}

	if out != "" {
		return file.WriteTable(out, result.Predictions)
	}
	return printTable(cmd.OutOrStdout(), []string{"strand", "position", "protein", "matches"}, result.Predictions)
}

// searchClient is a BLAST client from the blast settings.
func searchClient(noCache bool) *blast.Client {
	c := blast.New()
	c.URL = conf.BLAST.URL
	c.Program = conf.BLAST.Program
	c.Database = conf.BLAST.Database
	c.PollInterval = conf.BLAST.PollInterval
	c.SubmitDelay = conf.BLAST.SubmitDelay
	c.Logger = logger
	if conf.BLAST.CacheDir != "" && !noCache {
		c.Cache = blast.NewCache(conf.BLAST.CacheDir, conf.BLAST.CacheTTL)
	}
	return c
}
