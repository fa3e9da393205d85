// Command tsvmerge merges tab-separated files into one table by joining
// them on their shared SampleID column.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sampletools/tsvmerge/internal/join"
	"github.com/sampletools/tsvmerge/internal/logging"
	"github.com/sampletools/tsvmerge/internal/merge"
)

const version = "0.1.0"

func main() {
	var (
		inputs   []string
		output   string
		joinMode string
		verbose  bool
		seqURL   string
	)

	rootCmd := &cobra.Command{
		Use:   "tsvmerge -i <file>... -o <file>",
		Short: "Merge TSV files on the SampleID column",
		Long: `tsvmerge reads tab-separated files, joins them pairwise left to right
on their SampleID column and writes the merged table as TSV. The join
mode (inner, left, right or full outer) controls which samples survive
each step.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := join.ParseMode(joinMode)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger, closeFn := logging.Setup(level, seqURL)
			defer closeFn()
			slog.SetDefault(logger.With(slog.String("run_id", uuid.New().String())))

			_, err = merge.Merge(merge.Options{
				Inputs: inputs,
				Output: output,
				Mode:   mode,
			})
			return err
		},
	}

	rootCmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "input TSV file (repeatable, order-significant)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output TSV file path")
	rootCmd.Flags().StringVarP(&joinMode, "join", "j", "full", "join mode: inner, full, left or right")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&seqURL, "log-seq", "", "also ship logs to a Seq server at this URL")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of tsvmerge",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tsvmerge v" + version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
