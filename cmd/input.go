package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jjtimmons/contig/internal/file"
	"github.com/spf13/cobra"
)

// readsInput returns the reads of the --in file, or the arguments if no
// file was passed.
func readsInput(cmd *cobra.Command, args []string) ([]string, error) {
	if in, _ := cmd.Flags().GetString("in"); in != "" {
		reads, err := file.Load(in)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded reads", "file", in, "count", len(reads))
		return reads, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("no reads: pass them as arguments or with --in")
	}
	return args, nil
}

// dnaInput returns the DNA sequence of the --in file or of the first
// argument, which is either a path or the sequence itself.
func dnaInput(cmd *cobra.Command, args []string) (string, error) {
	in, _ := cmd.Flags().GetString("in")
	if in == "" && len(args) > 0 {
		if _, err := os.Stat(args[0]); err == nil {
			in = args[0]
		} else {
			return strings.ToUpper(strings.TrimSpace(args[0])), nil
		}
	}

	if in == "" {
		return "", fmt.Errorf("no DNA: pass a sequence or a file as an argument or with --in")
	}
	return file.LoadDNA(in)
}
