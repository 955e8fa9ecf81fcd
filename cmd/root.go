// Package cmd is for command line interactions with the contig application
package cmd

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jjtimmons/contig/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// settings file, set with --settings
	settingsFile string

	// conf is loaded before any command runs
	conf *config.Config

	// logger writes to stderr, command output goes to stdout
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "contig",
	})
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "contig",
	Short: "Assemble DNA reads into a contig and predict the proteins it encodes",
	Long: `Assemble overlapping DNA reads into a single contig with a greedy,
alignment based merge. Then find the open reading frames of the contig,
translate them and search for similar known proteins.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&settingsFile, "settings", config.RootSettingsFile, "settings file")
	flags.BoolP("verbose", "v", false, "debug logging")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.IntP("workers", "w", 0, "concurrent alignments during assembly (default: CPU count)")
	flags.IntP("min-protein-length", "m", 20, "fewest amino acids an ORF has to encode")
	flags.Bool("reverse", true, "also find ORFs on the reverse strand")

	must(viper.BindPFlag("verbose", flags.Lookup("verbose")))
	must(viper.BindPFlag("log-level", flags.Lookup("log-level")))
	must(viper.BindPFlag("assembly.workers", flags.Lookup("workers")))
	must(viper.BindPFlag("orf.min-protein-length", flags.Lookup("min-protein-length")))
	must(viper.BindPFlag("orf.reverse", flags.Lookup("reverse")))
}

// setup reads the settings file, loads the config and sets the log level.
func setup(cmd *cobra.Command, args []string) error {
	viper.SetConfigFile(settingsFile)
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	c, err := config.New()
	if err != nil {
		return err
	}
	conf = c
	setLevel(logger, c)

	logger.Debug("loaded settings", "file", viper.ConfigFileUsed(), "scoring", c.Scoring, "workers", c.Assembly.Workers, "orf", c.ORF)
	return nil
}

// setLevel applies the configured log level. Verbose wins.
func setLevel(l *log.Logger, c *config.Config) {
	if c.Verbose {
		l.SetLevel(log.DebugLevel)
		return
	}

	level, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		l.SetLevel(log.InfoLevel)
		l.Warn("unknown log-level, defaulting to info", "provided", c.LogLevel)
		return
	}
	l.SetLevel(level)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
