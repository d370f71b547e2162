package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/haesol/sajukit/internal/engine"
	"github.com/haesol/sajukit/internal/model"
)

// batchEntry is one input chart of a batch file.
type batchEntry struct {
	Label         string          `json:"label,omitempty"`
	Pillars       model.PillarSet `json:"pillars"`
	DaysSinceJeol *int            `json:"days_since_jeol,omitempty"`
}

// batchResult is one output line of a batch run.
type batchResult struct {
	Label    string          `json:"label,omitempty"`
	Analysis *model.Analysis `json:"analysis"`
}

func batchCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "batch <input.json>",
		Short: "Analyze many charts from a JSON file",
		Long: `Read a JSON array of charts and run the full pipeline on each one,
writing one JSON result per line. Input entries carry a pillar set, an
optional label, and an optional days-since-jeol count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read batch input: %w", err)
			}

			var entries []batchEntry
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("failed to parse batch input: %w", err)
			}
			if len(entries) == 0 {
				return fmt.Errorf("batch input %s contains no charts", args[0])
			}

			eng, err := initEngine()
			if err != nil {
				return err
			}

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer func() {
					if err := f.Close(); err != nil {
						slog.Warn("failed to close output file", "error", err)
					}
				}()
				out = f
			}
			w := bufio.NewWriter(out)
			defer w.Flush()

			bar := progressbar.NewOptions(len(entries),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionShowElapsedTimeOnFinish(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan][bold]Analyzing charts...[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)

			enc := json.NewEncoder(w)
			for i, entry := range entries {
				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				default:
				}

				result := batchResult{Label: entry.Label}
				result.Analysis = eng.Analyze(engine.Request{
					Pillars:       entry.Pillars,
					DaysSinceJeol: entry.DaysSinceJeol,
				})
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("failed to write result %d: %w", i, err)
				}
				_ = bar.Add(1)
			}

			slog.Info("batch complete", "charts", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: stdout)")

	return cmd
}
