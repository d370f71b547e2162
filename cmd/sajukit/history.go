package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haesol/sajukit/internal/cli"
	"github.com/haesol/sajukit/internal/report"
	"github.com/haesol/sajukit/internal/service"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage saved analyses",
		Long:  `List, show, and delete analyses saved with 'sajukit analyze --save'.`,
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyDeleteCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved analyses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store)

			records, err := store.ListAnalyses(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list analyses: %w", err)
			}

			if len(records) == 0 {
				fmt.Println(cli.InfoStyle.Render("No saved analyses. Use 'sajukit analyze --save' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Saved"),
				cli.BoldStyle.Render("Label"),
				cli.BoldStyle.Render("Chart"),
				cli.BoldStyle.Render("Strength"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4),
				strings.Repeat("-", 16),
				strings.Repeat("-", 12),
				strings.Repeat("-", 12),
				strings.Repeat("-", 10))

			for _, rec := range records {
				label := rec.Label
				if label == "" {
					label = cli.SubtleStyle.Render("(no label)")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					rec.ID,
					rec.CreatedAt.Format("2006-01-02 15:04"),
					label,
					rec.Pillars,
					rec.Analysis.Strength.Level.Korean())
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of analyses to list")

	return cmd
}

func historyShowCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid analysis id %q", args[0])
			}

			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store)

			rec, err := store.GetAnalysis(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to load analysis %d: %w", id, err)
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}

			if rec.Label != "" {
				fmt.Println(cli.SubtitleStyle.Render(rec.Label))
			}
			fmt.Println(report.NewCLIFormatter().FormatSummary(rec.Analysis))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the saved record as JSON")

	return cmd
}

func historyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid analysis id %q", args[0])
			}

			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store)

			if err := store.DeleteAnalysis(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete analysis %d: %w", id, err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted analysis %d", id)))
			return nil
		},
	}
}

func closeStore(store service.Store) {
	if err := store.Close(); err != nil {
		slog.Warn("failed to close store", "error", err)
	}
}
