// Package report renders assembled chart analyses for terminal display.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haesol/sajukit/internal/cli"
	"github.com/haesol/sajukit/internal/model"
)

// CLIFormatter renders an analysis as styled terminal text.
type CLIFormatter struct {
	styles *Styles
}

// NewCLIFormatter creates a new CLI formatter with default styles.
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{
		styles: NewStyles(),
	}
}

var palaceNames = map[model.Position]string{
	model.PositionYear:  "조상궁",
	model.PositionMonth: "부모궁",
	model.PositionDay:   "본인궁",
	model.PositionHour:  "자녀궁",
}

// FormatSummary renders the full report: pillars, element distribution,
// strength, gyeokguk, yongshin, relations, shinsal, palaces, and luck.
func (f *CLIFormatter) FormatSummary(a *model.Analysis) string {
	if a == nil {
		return f.styles.Error.Render("No analysis available")
	}

	sections := []string{
		f.formatPillars(a),
		f.formatElementDistribution(a.ElementDistribution),
		f.formatStrength(a.Strength),
		f.formatGyeokguk(a.Gyeokguk),
		f.formatYongshin(a.Yongshin),
	}

	if rel := f.formatRelations(a.Relations, a.HapTransformations); rel != "" {
		sections = append(sections, rel)
	}
	if sh := f.formatShinsal(a.WeightedShinsalHits, a.ShinsalComposites); sh != "" {
		sections = append(sections, sh)
	}
	if len(a.PalaceAnalysis) > 0 {
		sections = append(sections, f.formatPalaces(a.PalaceAnalysis, a.VoidBranches))
	}
	if len(a.LuckInfo) > 0 {
		sections = append(sections, f.FormatLuck(a.LuckInfo))
	}

	return strings.Join(sections, "\n\n")
}

// FormatTrace renders the computation trace lines, one per line, subtle.
func (f *CLIFormatter) FormatTrace(a *model.Analysis) string {
	if a == nil || len(a.ComputationTrace) == 0 {
		return ""
	}
	lines := make([]string, 0, len(a.ComputationTrace)+1)
	lines = append(lines, f.styles.Subtitle.Render("계산 과정"))
	for _, t := range a.ComputationTrace {
		lines = append(lines, f.styles.Subtle.Render("  "+t))
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatPillars(a *model.Analysis) string {
	title := f.styles.Title.Render("🀄 사주 원국")

	var cols []string
	// Traditional charts read hour to year, right to left; terminal output
	// keeps chart order left to right instead.
	for _, pos := range model.AllPositions {
		p := a.Pillars.Pillar(pos)
		stemStyled := cli.ElementStyle(int(p.Stem.Element())).Bold(true).Render(p.Stem.Hanja())
		branchStyled := cli.ElementStyle(int(p.Branch.Element())).Bold(true).Render(p.Branch.Hanja())
		label := f.styles.Subtle.Render(palaceNames[pos])
		col := lipgloss.JoinVertical(lipgloss.Center, label, stemStyled, branchStyled)
		cols = append(cols, f.styles.PillarBox.Render(col))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	dm := a.Pillars.DayMaster()
	dmLine := fmt.Sprintf("일간: %s %s (%s %s)",
		dm.Hanja(), dm.String(), dm.Polarity(), dm.Element().Korean())

	return strings.Join([]string{title, row, f.styles.Info.Render(dmLine)}, "\n")
}

func (f *CLIFormatter) formatElementDistribution(dist model.ElementScore) string {
	title := f.styles.Subtitle.Render("오행 분포")
	total := dist.Total()

	var lines []string
	lines = append(lines, title)
	for _, e := range model.AllElements {
		share := dist.Share(e)
		bar := f.renderBar(share, 24)
		label := cli.ElementStyle(int(e)).Render(fmt.Sprintf("%s(%s)", e.Korean(), e))
		lines = append(lines, fmt.Sprintf("  %-14s %s %5.1f%%", label, bar, share*100))
	}
	lines = append(lines, f.styles.Subtle.Render(fmt.Sprintf("  합계 %.2f", total)))
	return strings.Join(lines, "\n")
}

// renderBar draws a fixed-width proportion bar.
func (f *CLIFormatter) renderBar(share float64, width int) string {
	if share < 0 {
		share = 0
	}
	if share > 1 {
		share = 1
	}
	filled := int(share*float64(width) + 0.5)
	return f.styles.ProgressFill.Render(strings.Repeat("█", filled)) +
		f.styles.ProgressEmpty.Render(strings.Repeat("░", width-filled))
}

func (f *CLIFormatter) formatStrength(r model.StrengthResult) string {
	var levelStyle lipgloss.Style
	switch {
	case r.Level.IsStrong():
		levelStyle = f.styles.Favorable
	case r.Level == model.Neutral:
		levelStyle = f.styles.Mixed
	default:
		levelStyle = f.styles.Unfavorable
	}

	header := fmt.Sprintf("신강약: %s", levelStyle.Render(r.Level.Korean()))
	detail := fmt.Sprintf("득령 %.1f  득지 %.1f  득세 %.1f", r.Deukryeong, r.Deukji, r.Deukse)
	totals := fmt.Sprintf("부조 %.1f  극설 %.1f", r.TotalSupport, r.TotalOppose)

	body := strings.Join([]string{header, detail, f.styles.Subtle.Render(totals)}, "\n")
	return f.styles.StrengthBox.Render(body)
}

func (f *CLIFormatter) formatGyeokguk(g model.GyeokgukResult) string {
	line := fmt.Sprintf("격국: %s (%s, 확신도 %.0f%%)",
		f.styles.Score.Render(string(g.Type)), g.Category, g.Confidence*100)
	parts := []string{line}
	if g.Element != nil {
		parts = append(parts, fmt.Sprintf("주도 오행: %s", g.Element.Korean()))
	}
	if g.Reasoning != "" {
		parts = append(parts, f.styles.Subtle.Render(g.Reasoning))
	}
	return strings.Join(parts, "\n")
}

func (f *CLIFormatter) formatYongshin(y model.YongshinResult) string {
	elem := func(e model.Element) string {
		return cli.ElementStyle(int(e)).Bold(true).Render(e.Korean())
	}
	header := fmt.Sprintf("용신 %s  희신 %s  기신 %s  구신 %s",
		elem(y.Yongshin), elem(y.Heeshin), elem(y.Gisin), elem(y.Gusin))
	meta := fmt.Sprintf("전략 %s  일치도 %s  확신도 %.0f%%", y.Strategy, y.Agreement, y.Confidence*100)

	lines := []string{header, f.styles.Subtle.Render(meta)}
	if y.Reason != "" {
		lines = append(lines, f.styles.Subtle.Render(y.Reason))
	}
	return f.styles.YongshinBox.Render(strings.Join(lines, "\n"))
}

func (f *CLIFormatter) formatRelations(rs model.RelationSet, haps []model.HapTransformation) string {
	if len(rs.StemRelations) == 0 && len(rs.BranchRelations) == 0 {
		return ""
	}
	var lines []string
	lines = append(lines, f.styles.Subtitle.Render("합충 관계"))

	transformed := make(map[model.Stem]bool)
	for _, h := range haps {
		if h.Transformed {
			transformed[h.Relation.First] = true
		}
	}

	for _, r := range rs.StemRelations {
		line := fmt.Sprintf("  천간 %s: %s-%s", r.Type, r.First.Hanja(), r.Second.Hanja())
		if r.ResultElement != nil {
			line += fmt.Sprintf(" → %s", r.ResultElement.Korean())
			if transformed[r.First] {
				line += f.styles.Success.Render(" (화)")
			}
		}
		lines = append(lines, line)
	}
	for _, r := range rs.BranchRelations {
		line := fmt.Sprintf("  지지 %s: %s-%s", r.Type, r.First.Hanja(), r.Second.Hanja())
		if r.ResultElement != nil {
			line += fmt.Sprintf(" → %s", r.ResultElement.Korean())
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

var shinsalNames = map[model.ShinsalType]string{
	model.ShinsalYeokma:        "역마살",
	model.ShinsalDohwa:         "도화살",
	model.ShinsalHwagae:        "화개살",
	model.ShinsalCheoneulGwiin: "천을귀인",
	model.ShinsalYangin:        "양인살",
	model.ShinsalBaekho:        "백호살",
	model.ShinsalGoegang:       "괴강살",
	model.ShinsalWonjin:        "원진살",
	model.ShinsalGwimun:        "귀문관살",
}

func (f *CLIFormatter) formatShinsal(hits []model.WeightedShinsalHit, composites []model.ShinsalComposite) string {
	if len(hits) == 0 {
		return ""
	}
	var lines []string
	lines = append(lines, f.styles.Subtitle.Render("신살"))
	for _, h := range hits {
		name := shinsalNames[h.Hit.Type]
		if name == "" {
			name = string(h.Hit.Type)
		}
		lines = append(lines, fmt.Sprintf("  %-8s %-5s %s",
			name, positionName(h.Hit.Position),
			f.styles.Score.Render(fmt.Sprintf("%d", h.WeightedScore))))
	}
	for _, c := range composites {
		line := fmt.Sprintf("  복합: %s (+%d)", c.Name, c.Score)
		if c.SamePillar {
			line += f.styles.Warning.Render(" 동주")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (f *CLIFormatter) formatPalaces(palaces []model.PalaceAnalysis, void [2]model.Branch) string {
	var lines []string
	lines = append(lines, f.styles.Subtitle.Render("궁위"))
	for _, p := range palaces {
		mark := f.styles.Unfavorable.Render("△")
		if p.Favorable {
			mark = f.styles.Favorable.Render("○")
		}
		lines = append(lines, fmt.Sprintf("  %s %-5s %s  %s · %s",
			mark, positionName(p.Position), p.Meaning,
			p.PrincipalTenGod.Korean(), p.LifeStage.Korean()))
	}
	lines = append(lines, f.styles.Subtle.Render(
		fmt.Sprintf("  공망: %s %s", void[0].Hanja(), void[1].Hanja())))
	return strings.Join(lines, "\n")
}

var verdictLabels = map[model.LuckVerdict]string{
	model.VerdictVeryFavorable:   "대길",
	model.VerdictFavorable:       "길",
	model.VerdictMixed:           "반길반흉",
	model.VerdictUnfavorable:     "흉",
	model.VerdictVeryUnfavorable: "대흉",
}

// FormatLuck renders daeun and saeun pillar analyses.
func (f *CLIFormatter) FormatLuck(luck []model.LuckPillarAnalysis) string {
	var lines []string
	lines = append(lines, f.styles.Subtitle.Render("운세"))
	for _, l := range luck {
		var verdictStyle lipgloss.Style
		switch l.Verdict {
		case model.VerdictVeryFavorable, model.VerdictFavorable:
			verdictStyle = f.styles.Favorable
		case model.VerdictMixed:
			verdictStyle = f.styles.Mixed
		default:
			verdictStyle = f.styles.Unfavorable
		}

		line := fmt.Sprintf("  %-14s %-6s %-6s %s (%.1f)",
			l.Pillar, l.TenGod.Korean(), l.LifeStage.Korean(),
			verdictStyle.Render(verdictLabels[l.Verdict]), l.Score)
		var notes []string
		if l.MatchesYongshin {
			notes = append(notes, "용신운")
		}
		if l.MatchesGisin {
			notes = append(notes, "기신운")
		}
		for _, r := range l.StemRelations {
			notes = append(notes, fmt.Sprintf("천간%s", r.Type))
		}
		for _, r := range l.BranchRelations {
			notes = append(notes, fmt.Sprintf("지지%s", r.Type))
		}
		if len(notes) > 0 {
			line += f.styles.Subtle.Render(" [" + strings.Join(notes, " ") + "]")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func positionName(p model.Position) string {
	switch p {
	case model.PositionYear:
		return "년주"
	case model.PositionMonth:
		return "월주"
	case model.PositionDay:
		return "일주"
	case model.PositionHour:
		return "시주"
	}
	return string(p)
}
