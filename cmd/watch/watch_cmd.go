package watch

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var includeDirs []string
var outputFormat string
var outputFile string
var verbose bool

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch <root-file>",
	Short: "Rebuild the include graph whenever watched files change.",
	Long: `Watch the root file's directory tree and the declared include
directories, rebuilding the include graph on every relevant change.

Examples:
  incmap watch src/main.cpp -I include
  incmap watch src/main.cpp -I include -f dot -o deps.dot`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		opts := &watchOptions{
			rootFile:    args[0],
			includeDirs: includeDirs,
			format:      outputFormat,
			outputFile:  outputFile,
			verbose:     verbose,
			stdout:      cmd.OutOrStdout(),
		}

		// Render once up front so the watcher starts from a known-good state.
		publishGraph(opts)

		return watchAndRebuild(ctx, opts)
	},
}

func init() {
	WatchCmd.Flags().StringArrayVarP(&includeDirs, "include-dir", "I", nil, "Include directory, 'dir' or 'dir#alias' (repeatable)")
	WatchCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, dot, or json")
	WatchCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to a file instead of stdout")
	WatchCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log traversal details")
}
