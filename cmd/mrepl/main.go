// Command mrepl replaces every occurrence of multiple byte patterns in a
// file or stdin in one pass and writes the result to stdout or a file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coregx/multireplace"
	"github.com/spf13/cobra"
)

var (
	replacePairs  []string
	outputPath    string
	showCount     bool
	nullTerminate bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mrepl [file]",
		Short: "Multi-pattern search-and-replace over a file or stdin",
		Long: `mrepl replaces every non-overlapping occurrence of a set of byte
patterns in a single pass. Input comes from the named file, or from stdin
when no file (or "-") is given. Patterns are plain bytes, not regular
expressions; at a given position the longest matching pattern wins.

Example:
  mrepl --pair cat=dog --pair bird=fish input.txt
  echo "1 and 2" | mrepl -p 1=one -p 2=two
  mrepl -p foo=bar -o patched.bin original.bin --count`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(args)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringArrayVarP(&replacePairs, "pair", "p", nil, "Replacement as old=new (repeatable)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().BoolVar(&showCount, "count", false, "Print the replacement count to stderr")
	cmd.Flags().BoolVar(&nullTerminate, "null", false, "NUL-terminate the output buffer")
	return cmd
}

func runReplace(args []string) error {
	if len(replacePairs) == 0 {
		return errors.New("at least one --pair is required")
	}
	pairs := make([]multireplace.Pair, 0, len(replacePairs))
	for _, arg := range replacePairs {
		old, repl, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("invalid --pair %q: want old=new", arg)
		}
		pairs = append(pairs, multireplace.Pair{
			Key:   []byte(old),
			Value: []byte(repl),
		})
	}

	config := multireplace.DefaultConfig()
	config.NullTerminate = nullTerminate
	r, err := multireplace.NewWithConfig(pairs, config)
	if err != nil {
		return err
	}

	src, err := readInput(args)
	if err != nil {
		return err
	}

	out, n, err := r.Replace(src)
	if err != nil {
		return err
	}
	if showCount {
		fmt.Fprintf(os.Stderr, "%d replacements\n", n)
	}
	return writeOutput(out)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func writeOutput(out []byte) error {
	if outputPath != "" {
		return os.WriteFile(outputPath, out, 0o644)
	}
	_, err := os.Stdout.Write(out)
	return err
}
