package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haesol/sajukit/internal/engine"
	"github.com/haesol/sajukit/internal/model"
	"github.com/haesol/sajukit/internal/report"
)

func luckCmd() *cobra.Command {
	var (
		jsonOut    bool
		daeunRaw   string
		daeunOrder int
		saeunRaw   []string
	)

	cmd := &cobra.Command{
		Use:   "luck",
		Short: "Score luck pillars against a chart",
		Long: `Score a daeun (decade) pillar and any number of saeun (year) pillars
against a natal chart. Saeun pillars are scored under the daeun when one
is given, so relations from both layers merge into the verdict.`,
		Example: `  sajukit luck --year 甲子 --month 丙寅 --day 戊辰 --hour 庚午 \
      --daeun 庚午 --saeun 辛未@2031 --saeun 壬申@2032`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ps, err := pillarsFromFlags(cmd)
			if err != nil {
				return err
			}

			req := engine.Request{Pillars: ps}
			if daeunRaw != "" {
				p, err := model.ParsePillar(daeunRaw)
				if err != nil {
					return fmt.Errorf("--daeun: %w", err)
				}
				req.Daeun = &model.LuckPillar{Pillar: p, Scale: model.ScaleDaeun, Order: daeunOrder}
			}
			for _, raw := range saeunRaw {
				lp, err := parseSaeun(raw)
				if err != nil {
					return err
				}
				req.Saeuns = append(req.Saeuns, lp)
			}
			if req.Daeun == nil && len(req.Saeuns) == 0 {
				return fmt.Errorf("nothing to score: give --daeun and/or --saeun")
			}

			eng, err := initEngine()
			if err != nil {
				return err
			}
			analysis := eng.Analyze(req)

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(analysis.LuckInfo)
			}

			fmt.Println(report.NewCLIFormatter().FormatLuck(analysis.LuckInfo))
			return nil
		},
	}

	pillarFlags(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit luck analyses as JSON")
	cmd.Flags().StringVar(&daeunRaw, "daeun", "", "decade pillar (e.g. 庚午)")
	cmd.Flags().IntVar(&daeunOrder, "daeun-order", 0, "decade index of the daeun pillar")
	cmd.Flags().StringArrayVar(&saeunRaw, "saeun", nil, "year pillar, optionally with @year (e.g. 辛未@2031); repeatable")

	return cmd
}

// parseSaeun splits an optional @year suffix off a pillar spec.
func parseSaeun(raw string) (model.LuckPillar, error) {
	spec, yearPart, found := strings.Cut(raw, "@")
	lp := model.LuckPillar{Scale: model.ScaleSaeun}
	p, err := model.ParsePillar(spec)
	if err != nil {
		return lp, fmt.Errorf("--saeun: %w", err)
	}
	lp.Pillar = p
	if found {
		year, err := strconv.Atoi(yearPart)
		if err != nil {
			return lp, fmt.Errorf("--saeun %q: invalid year: %w", raw, err)
		}
		lp.Year = year
	}
	return lp, nil
}
