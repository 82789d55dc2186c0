package cmd

import (
	"fmt"
	"io"
	"os"

	"sulaalus/pkg/logging"
	"sulaalus/pkg/reverse"
	"sulaalus/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	file       bool
	output     string
	lineByLine bool
	verbose    bool
}

// Execute runs the root command against the process arguments.
func Execute() error {
	root := NewRootCmd(os.Stdout, os.Stderr, nil)
	root.SetArgs(os.Args[1:])
	return root.Execute()
}

// NewRootCmd builds the sulaalus command. It has no subcommands, so any word,
// "version" and "help" included, is taken as input. When logger is nil one is
// built from the --verbose flag at run time.
func NewRootCmd(stdout, stderr io.Writer, logger *zap.Logger) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "sulaalus <input>",
		Short: "sulaalus reverses text content",
		Long: `sulaalus reverses text, either given directly or read from a file.
It reverses the whole content as one unit, or each line on its own with --line-by-line.`,
		Version:       version.Get().Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger
			if log == nil {
				var err error
				log, err = logging.New(flags.verbose, version.AppName, version.Get().Version)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				defer logging.Sync(log)
			}

			inv := reverse.Invocation{
				Input:      args[0],
				IsFile:     flags.file,
				Output:     flags.output,
				LineByLine: flags.lineByLine,
			}

			out, printed, err := reverse.New(log).Process(inv)
			if err != nil {
				log.Debug("Reversal failed", zap.Error(err))
				return err
			}
			if printed {
				fmt.Fprintln(stdout, out)
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(version.Get().String() + "\n")
	root.CompletionOptions.HiddenDefaultCmd = true

	root.Flags().BoolVarP(&flags.file, "file", "f", false, "Treat the input as a file path")
	root.Flags().StringVarP(&flags.output, "output", "o", "", "Write the result to this file instead of stdout")
	root.Flags().BoolVarP(&flags.lineByLine, "line-by-line", "l", false, "Reverse each line instead of the whole content")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Enable debug logging on stderr")
	return root
}
