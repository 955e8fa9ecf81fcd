// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jjtimmons/contig/internal/align"
	"github.com/spf13/viper"
)

var (
	// Root is the directory of contig's settings and caches
	Root = filepath.Join(home(), ".contig")

	// RootSettingsFile is the default settings file
	RootSettingsFile = filepath.Join(Root, "settings.yaml")
)

// ScoringConfig is the nucleotide scoring used for alignment and assembly
type ScoringConfig struct {
	// score of two identical bases
	Match int `mapstructure:"match"`

	// score of two different bases
	Mismatch int `mapstructure:"mismatch"`

	// penalty of a gap
	Gap int `mapstructure:"gap"`
}

// AssemblyConfig is settings for assembly
type AssemblyConfig struct {
	// the number of concurrent pairwise alignments
	Workers int `mapstructure:"workers"`
}

// ORFConfig is settings for finding open reading frames
type ORFConfig struct {
	// the fewest amino acids an ORF has to encode, start and stop excluded
	MinProteinLength int `mapstructure:"min-protein-length"`

	// whether to scan the reverse strand
	Reverse bool `mapstructure:"reverse"`
}

// BLASTConfig is settings for the remote protein search
type BLASTConfig struct {
	URL          string        `mapstructure:"url"`
	Program      string        `mapstructure:"program"`
	Database     string        `mapstructure:"database"`
	PollInterval time.Duration `mapstructure:"poll-interval"`
	SubmitDelay  time.Duration `mapstructure:"submit-delay"`
	Timeout      time.Duration `mapstructure:"timeout"`

	// directory of the result cache, no cache if empty
	CacheDir string        `mapstructure:"cache-dir"`
	CacheTTL time.Duration `mapstructure:"cache-ttl"`
}

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// log level: debug, info, warn or error
	LogLevel string `mapstructure:"log-level"`

	// debug logging, overrides LogLevel
	Verbose bool `mapstructure:"verbose"`

	Scoring ScoringConfig `mapstructure:"scoring"`

	Assembly AssemblyConfig `mapstructure:"assembly"`

	ORF ORFConfig `mapstructure:"orf"`

	BLAST BLASTConfig `mapstructure:"blast"`
}

func init() {
	viper.SetDefault("log-level", "info")
	viper.SetDefault("verbose", false)

	viper.SetDefault("scoring.match", 1)
	viper.SetDefault("scoring.mismatch", -4)
	viper.SetDefault("scoring.gap", -4)

	viper.SetDefault("assembly.workers", runtime.NumCPU())

	viper.SetDefault("orf.min-protein-length", 20)
	viper.SetDefault("orf.reverse", true)

	viper.SetDefault("blast.url", "https://blast.ncbi.nlm.nih.gov/Blast.cgi")
	viper.SetDefault("blast.program", "blastp")
	viper.SetDefault("blast.database", "pdb")
	viper.SetDefault("blast.poll-interval", time.Minute)
	viper.SetDefault("blast.submit-delay", 10*time.Second)
	viper.SetDefault("blast.timeout", 30*time.Minute)
	viper.SetDefault("blast.cache-dir", filepath.Join(Root, "blast"))
	viper.SetDefault("blast.cache-ttl", 7*24*time.Hour)
}

// New returns a new Config struct populated by Viper settings
// (either from the settings file) and/or command line arguments
func New() (*Config, error) {
	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %v", err)
	}
	return c, c.validate()
}

// NucleotideScoring is the DNA scoring model of the settings.
func (c *Config) NucleotideScoring() *align.Scoring {
	return align.Nucleotide(c.Scoring.Match, c.Scoring.Mismatch, c.Scoring.Gap)
}

func (c *Config) validate() error {
	if c.Scoring.Gap > 0 {
		return fmt.Errorf("scoring.gap must not be positive, got %d", c.Scoring.Gap)
	}
	if c.Assembly.Workers < 1 {
		c.Assembly.Workers = runtime.NumCPU()
	}
	return nil
}

func home() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.TempDir()
}
