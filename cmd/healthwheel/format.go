package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/analytics"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/scene2d"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/validation"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/variants"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	okColor      = color.New(color.FgGreen, color.Bold)
)

// bandColor maps a score band to its label color.
func bandColor(b analytics.Band) *color.Color {
	switch b {
	case analytics.BandExcellent:
		return color.New(color.FgGreen, color.Bold)
	case analytics.BandGood:
		return color.New(color.FgGreen)
	case analytics.BandFair:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func printResults(w io.Writer, title string, c *color.Color, results []validation.Result) {
	if len(results) == 0 {
		return
	}
	c.Fprintf(w, "%s (%d):\n", title, len(results))
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s\n", r.Level, r.Message)
		if r.SpecPath != "" && r.ActualValue != nil {
			fmt.Fprintf(w, "    -> %s = %v\n", r.SpecPath, r.ActualValue)
		} else if r.SpecPath != "" {
			fmt.Fprintf(w, "    -> %s\n", r.SpecPath)
		}
		if r.Expected != "" {
			fmt.Fprintf(w, "    expected: %s\n", r.Expected)
		}
		if r.ConflictWith != "" {
			fmt.Fprintf(w, "    conflicts with: %s\n", r.ConflictWith)
		}
		for _, s := range r.Suggestions {
			fmt.Fprintf(w, "    * %s\n", s)
		}
	}
	fmt.Fprintln(w)
}

func printValidationReport(w io.Writer, r *validation.Report) {
	printResults(w, "ERRORS", errorColor, r.Errors)
	printResults(w, "WARNINGS", warningColor, r.Warnings)
	printResults(w, "INFO", infoColor, r.Info)

	if r.Valid {
		fmt.Fprintf(w, "Result: %s (%s)\n", okColor.Sprint("VALID"), r.Summary)
	} else {
		fmt.Fprintf(w, "Result: %s (%s)\n", errorColor.Sprint("INVALID"), r.Summary)
	}
}

func printEntityTable(w io.Writer, sc *scene2d.Scene) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Category", "Score", "Band", "Trend", "Angle", "Radius", "X", "Y"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, m := range sc.Markers {
		data = append(data, []string{
			m.ID,
			m.Category,
			fmt.Sprintf("%.1f", m.Score),
			bandColor(analytics.Band(m.Band)).Sprint(m.Band),
			formatTrend(m.Trend),
			fmt.Sprintf("%.1f", m.AngleDegrees),
			fmt.Sprintf("%.1f", m.Distance),
			fmt.Sprintf("%.1f", m.Position[0]),
			fmt.Sprintf("%.1f", m.Position[1]),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func printSummary(w io.Writer, sc *scene2d.Scene) error {
	s := sc.Summary
	fmt.Fprintf(w, "%s: %d entities, mean %.1f (%s), range %.0f-%.0f\n",
		sc.Metadata.Title, s.Count, s.Mean, bandColor(s.Band).Sprint(s.Band), s.Min, s.Max)
	fmt.Fprintf(w, "Trends: %d improving, %d stable, %d declining\n", s.Improving, s.Stable, s.Declining)
	if len(sc.Connectors) > 0 {
		fmt.Fprintf(w, "Connectors: %d drawn, %d dropped\n", len(sc.Connectors), sc.Metadata.ConnectionsDropped)
	}
	if len(s.Categories) == 0 {
		return nil
	}
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Entities", "Mean", "Band"})
	var data [][]string
	for _, c := range s.Categories {
		data = append(data, []string{
			c.Category,
			fmt.Sprintf("%d", c.Count),
			fmt.Sprintf("%.1f", c.Mean),
			bandColor(c.Band).Sprint(c.Band),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func printVariantTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "Title", "Mode", "Radii", "Inner", "Start", "Rotation", "Connectors"})

	var data [][]string
	for _, name := range variants.Names() {
		v, _ := variants.Lookup(name)
		data = append(data, []string{
			v.Name,
			v.Title,
			string(v.Mode),
			fmt.Sprintf("%.0f-%.0f", v.Layout.MinRadius, v.Layout.MaxRadius),
			fmt.Sprintf("%.0f", v.Layout.InnerRadius),
			fmt.Sprintf("%.0f", v.Layout.StartAngle),
			fmt.Sprintf("%g", v.Layout.RotationSpeed),
			yesNo(v.ShowConnectors),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func formatTrend(delta float64) string {
	switch {
	case delta > analytics.TrendDeadband:
		return fmt.Sprintf("+%.1f", delta)
	case delta < -analytics.TrendDeadband:
		return fmt.Sprintf("%.1f", delta)
	default:
		return "="
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
