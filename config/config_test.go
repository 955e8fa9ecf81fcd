// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"log level", c.LogLevel, "info"},
		{"match", c.Scoring.Match, 1},
		{"mismatch", c.Scoring.Mismatch, -4},
		{"gap", c.Scoring.Gap, -4},
		{"workers", c.Assembly.Workers, runtime.NumCPU()},
		{"min protein length", c.ORF.MinProteinLength, 20},
		{"reverse", c.ORF.Reverse, true},
		{"program", c.BLAST.Program, "blastp"},
		{"database", c.BLAST.Database, "pdb"},
		{"poll interval", c.BLAST.PollInterval, time.Minute},
		{"submit delay", c.BLAST.SubmitDelay, 10 * time.Second},
		{"cache ttl", c.BLAST.CacheTTL, 7 * 24 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("New() %s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestNew_settingsFile(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "settings.yaml")
	yaml := `scoring:
  match: 2
  gap: -6
orf:
  min-protein-length: 50
  reverse: false
blast:
  poll-interval: 90s
`
	if err := os.WriteFile(settings, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	viper.SetConfigFile(settings)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		viper.Set("scoring.match", 1)
		viper.Set("scoring.gap", -4)
		viper.Set("orf.min-protein-length", 20)
		viper.Set("orf.reverse", true)
		viper.Set("blast.poll-interval", time.Minute)
	})

	c, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if c.Scoring.Match != 2 || c.Scoring.Mismatch != -4 || c.Scoring.Gap != -6 {
		t.Errorf("New() scoring = %+v", c.Scoring)
	}
	if c.ORF.MinProteinLength != 50 || c.ORF.Reverse {
		t.Errorf("New() orf = %+v", c.ORF)
	}
	if c.BLAST.PollInterval != 90*time.Second {
		t.Errorf("New() poll interval = %v, want 90s", c.BLAST.PollInterval)
	}

	if got, _ := c.NucleotideScoring().Score('A', 'A'); got != 2 {
		t.Errorf("Config.NucleotideScoring() match = %d, want 2", got)
	}
}

func TestConfig_validate(t *testing.T) {
	c := &Config{Scoring: ScoringConfig{Gap: 1}}
	if err := c.validate(); err == nil {
		t.Error("Config.validate() expected error for a positive gap")
	}

	c = &Config{Scoring: ScoringConfig{Gap: -4}}
	if err := c.validate(); err != nil || c.Assembly.Workers < 1 {
		t.Errorf("Config.validate() = %v, workers %d", err, c.Assembly.Workers)
	}
}
