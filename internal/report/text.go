// Package report renders a finished diagnosis for people: styled text for
// the terminal and a workbook for download.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizpro/internal/diagnosis"
	"github.com/abhisek/bizpro/internal/preset"
	"github.com/abhisek/bizpro/internal/ui/components"
	"github.com/abhisek/bizpro/internal/ui/theme"
)

const defaultWidth = 72

// RenderText lays out r as styled terminal text no wider than width.
// A non-positive width uses 72 columns.
func RenderText(r *diagnosis.Result, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	p := lookupPreset(r.Preset)

	section := lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary).MarginTop(1)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(width)

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line(theme.Title.Render("Business English Diagnosis"))
	line(lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).
		Render(fmt.Sprintf("%s  ·  %d/100", r.BusinessLevel.Label(), r.OverallScore)))
	line(dim.Render(r.BusinessLevelDescription))

	line(section.Render("Skills"))
	for _, s := range r.SkillScores {
		bar := components.NewProgressBar(padLabel(scoreLabel(p, s.Key), 22), float64(s.Value)/100, true, width)
		line(bar.View())
	}

	line(section.Render("Strengths"))
	bullets(line, body, r.Strengths)
	line(section.Render("Weaknesses"))
	bullets(line, body, r.Weaknesses)

	line(section.Render("Interview readiness: " + r.InterviewReadiness.Level.Label()))
	line(body.Render(r.InterviewReadiness.Description))
	bullets(line, dim, r.InterviewReadiness.Tips)

	line(section.Render("Recommendations"))
	bullets(line, body, r.Recommendations)

	line(section.Render("Roadmap"))
	for _, ph := range r.Roadmap {
		line(theme.Selected.Render(fmt.Sprintf("%d. %s", ph.Phase, ph.Title)) +
			theme.Hint.Render("  ("+ph.Duration+")"))
		bullets(line, body, ph.Goals)
	}

	line(section.Render("Recommended services"))
	for _, svc := range r.RecommendedServices {
		line(theme.Selected.Render(fmt.Sprintf("%d. %s", svc.Rank, svc.Name)) +
			theme.Hint.Render("  "+svc.Pricing))
		line(body.Render("   " + svc.WhyRecommended))
	}

	return b.String()
}

func bullets(line func(string), style lipgloss.Style, items []string) {
	if len(items) == 0 {
		line(theme.Hint.Render("  (none)"))
		return
	}
	for _, it := range items {
		line(style.Render("  • " + it))
	}
}

func padLabel(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

// lookupPreset returns nil for results from a preset that is no longer
// registered; labels then fall back to the raw keys.
func lookupPreset(name string) *preset.Preset {
	p, err := preset.Get(name)
	if err != nil {
		return nil
	}
	return p
}

func scoreLabel(p *preset.Preset, key string) string {
	if p == nil {
		return strings.ToUpper(key)
	}
	return p.ScoreLabel(key)
}
