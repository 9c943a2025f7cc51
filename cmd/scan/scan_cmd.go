package scan

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/LegacyCodeHQ/incmap/cmd/scan/formatters"
	"github.com/LegacyCodeHQ/incmap/incgraph"
)

var includeDirs []string
var outputFormat string
var outputFile string
var verbose bool

// ScanCmd represents the scan command
var ScanCmd = &cobra.Command{
	Use:   "scan <root-file>",
	Short: "Build the include graph for a translation unit.",
	Long: `Build the full include graph for a C/C++ translation unit and print
the discovered include paths, headers, and inferred sources.

Include directories are declared as 'dir' or 'dir#alias'; the alias prefixes
every includable name registered under that directory.

Examples:
  incmap scan src/main.cpp
  incmap scan src/main.cpp -I include
  incmap scan src/main.cpp -I vendor/mylib/include#mylib -f dot -o deps.dot`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := Run(args[0], includeDirs, outputFormat, verbose)
		if err != nil {
			return err
		}

		return Emit(output, outputFile, cmd.OutOrStdout())
	},
}

// Run builds the include graph and renders it in the requested format. Shared
// with the watch command so every rebuild goes through the same path.
func Run(rootFile string, includeSpecs []string, format string, verbose bool) (string, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	formatter, err := formatters.NewFormatter(format)
	if err != nil {
		return "", err
	}

	graph, err := incgraph.Build(rootFile, ParseDirSpecs(includeSpecs), incgraph.Options{Logger: logger})
	if err != nil {
		return "", fmt.Errorf("failed to build include graph: %w", err)
	}

	return formatter.Format(graph)
}

func init() {
	ScanCmd.Flags().StringArrayVarP(&includeDirs, "include-dir", "I", nil, "Include directory, 'dir' or 'dir#alias' (repeatable)")
	ScanCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, dot, or json")
	ScanCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to a file instead of stdout")
	ScanCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log traversal details")
}
