package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// globalOptions holds flags shared by every subcommand.
type globalOptions struct {
	debug     bool
	logFormat string
}

// logger builds a slog logger writing to w. Debug enables debug records.
func (o *globalOptions) logger(w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	if o.debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	switch o.logFormat {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", o.logFormat)
	}
}

func newRootCmd(version string) *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "limitdoc",
		Short: "Render limit tables and command transcripts for documentation",
		Long: `limitdoc turns a catalog of per-service limits into aligned
reStructuredText tables, and long command transcripts into short excerpts
that keep their most informative lines.`,
		Version: version,
		// Errors are reported once by Execute; usage is noise for data errors.
		SilenceUsage: true,
	}
	cmd.SetVersionTemplate(`{{printf "limitdoc version %s\n" .Version}}`)
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(newTableCmd(opts))
	cmd.AddCommand(newCatalogCmd(opts))
	cmd.AddCommand(newSummarizeCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of limitdoc",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "limitdoc version %s\n", cmd.Root().Version)
		},
	}
}

// openInput returns the named file, or the command's stdin for "" and "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}
