package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/bizpro/internal/diagnosis"
)

// Sheet names of the workbook, in tab order.
const (
	SheetSummary  = "Summary"
	SheetSkills   = "Skills"
	SheetRoadmap  = "Roadmap"
	SheetServices = "Services"
)

// WriteXLSX exports r as a workbook with one sheet per section.
func WriteXLSX(r *diagnosis.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with "Sheet1"; rename it rather than leaving it empty.
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("failed to create %s sheet: %w", SheetSummary, err)
	}
	for _, name := range []string{SheetSkills, SheetRoadmap, SheetServices} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create %s sheet: %w", name, err)
		}
	}

	p := lookupPreset(r.Preset)

	summary := [][]any{
		{"Field", "Value"},
		{"Preset", r.Preset},
		{"Business level", r.BusinessLevel.Label()},
		{"Description", r.BusinessLevelDescription},
		{"Overall score", r.OverallScore},
		{"Interview readiness", r.InterviewReadiness.Level.Label()},
		{"Readiness note", r.InterviewReadiness.Description},
		{"Strengths", strings.Join(r.Strengths, "; ")},
		{"Weaknesses", strings.Join(r.Weaknesses, "; ")},
		{"Recommendations", strings.Join(r.Recommendations, "\n")},
		{"Generated at", r.GeneratedAt.Format("2006-01-02 15:04 MST")},
	}

	skills := [][]any{{"Skill", "Key", "Score"}}
	for _, s := range r.SkillScores {
		skills = append(skills, []any{scoreLabel(p, s.Key), s.Key, s.Value})
	}

	phases := [][]any{{"Phase", "Title", "Duration", "Goals"}}
	for _, ph := range r.Roadmap {
		phases = append(phases, []any{ph.Phase, ph.Title, ph.Duration, strings.Join(ph.Goals, "\n")})
	}

	services := [][]any{{"Rank", "Name", "Category", "Pricing", "Free trial", "Why", "Link"}}
	for _, svc := range r.RecommendedServices {
		services = append(services, []any{
			svc.Rank, svc.Name, svc.Category, svc.Pricing, svc.FreeTrialInfo, svc.WhyRecommended, svc.AffiliateLink,
		})
	}

	for _, sheet := range []struct {
		name string
		rows [][]any
	}{
		{SheetSummary, summary},
		{SheetSkills, skills},
		{SheetRoadmap, phases},
		{SheetServices, services},
	} {
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
