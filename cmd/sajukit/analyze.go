package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haesol/sajukit/internal/engine"
	"github.com/haesol/sajukit/internal/report"
	"github.com/haesol/sajukit/internal/service"
)

func analyzeCmd() *cobra.Command {
	var (
		jsonOut       bool
		showTrace     bool
		save          bool
		label         string
		daysSinceJeol int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a four-pillars chart",
		Long: `Run the full analysis pipeline on a chart given as four stem/branch
pairs: element distribution, day-master strength, gyeokguk, yongshin,
relations, shinsal stars, life stages, and palace readings.`,
		Example: `  sajukit analyze --year 甲子 --month 丙寅 --day 戊辰 --hour 庚午
  sajukit analyze --year 0:0 --month 2:2 --day 4:4 --hour 6:6 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ps, err := pillarsFromFlags(cmd)
			if err != nil {
				return err
			}

			eng, err := initEngine()
			if err != nil {
				return err
			}

			req := engine.Request{Pillars: ps}
			if cmd.Flags().Changed("days-since-jeol") {
				req.DaysSinceJeol = &daysSinceJeol
			}

			analysis := eng.Analyze(req)

			if save {
				store, err := initStorage(cmd.Context())
				if err != nil {
					return err
				}
				defer func() {
					if err := store.Close(); err != nil {
						slog.Warn("failed to close store", "error", err)
					}
				}()

				id, err := store.SaveAnalysis(cmd.Context(), service.AnalysisRecord{
					CreatedAt: time.Now(),
					Label:     label,
					Pillars:   analysis.Pillars,
					Config:    eng.Config(),
					Analysis:  analysis,
				})
				if err != nil {
					return fmt.Errorf("failed to save analysis: %w", err)
				}
				slog.Info("analysis saved", "id", id)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(analysis)
			}

			formatter := report.NewCLIFormatter()
			fmt.Println(formatter.FormatSummary(analysis))
			if showTrace {
				fmt.Println()
				fmt.Println(formatter.FormatTrace(analysis))
			}
			return nil
		},
	}

	pillarFlags(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full analysis as JSON")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "show the computation trace")
	cmd.Flags().BoolVar(&save, "save", false, "save the analysis to history")
	cmd.Flags().StringVar(&label, "label", "", "label for the saved analysis")
	cmd.Flags().IntVar(&daysSinceJeol, "days-since-jeol", 0, "days elapsed since the last solar-term boundary")

	return cmd
}
