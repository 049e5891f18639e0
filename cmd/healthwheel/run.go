package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ollie-pb/next-health-dashboard-sub000/internal/server"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/render"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/scene2d"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/spec"
	"github.com/ollie-pb/next-health-dashboard-sub000/pkg/validation"
)

// loadAndValidate loads the spec, applies the variant override and runs
// schema validation.
func (a *app) loadAndValidate(projectPath string) (*spec.WheelSpec, *validation.Report, error) {
	wheelSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	if a.cfg.Variant != "" {
		a.logger.Debug("variant overridden", "spec", wheelSpec.Wheel.Variant, "flag", a.cfg.Variant)
		wheelSpec.Wheel.Variant = a.cfg.Variant
	}
	return wheelSpec, validation.ValidateSchema(wheelSpec), nil
}

// assemble runs one layout pass, refusing specs with schema errors. On
// failure the report goes to errOut since out carries JSON or SVG.
func (a *app) assemble(projectPath string) (*scene2d.Scene, *validation.Report, error) {
	wheelSpec, report, err := a.loadAndValidate(projectPath)
	if err != nil {
		return nil, nil, err
	}
	if !report.Valid {
		printValidationReport(a.errOut, report)
		return nil, report, fmt.Errorf("spec has validation errors: %w", report.Err())
	}

	sc, layoutReport := scene2d.Assemble(wheelSpec, scene2d.Frame{
		TimeMs:    a.cfg.TimeMs,
		Highlight: a.cfg.Highlight,
	})
	report.Merge(layoutReport)
	if sc == nil {
		printValidationReport(a.errOut, report)
		return nil, report, fmt.Errorf("layout failed: %w", layoutReport.Err())
	}
	for _, w := range report.Warnings {
		a.logger.Warn(w.Message, "path", w.SpecPath)
	}
	return sc, report, nil
}

func (a *app) runValidate(projectPath string) error {
	wheelSpec, report, err := a.loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if report.Valid {
		sc, layoutReport := scene2d.Assemble(wheelSpec, scene2d.Frame{})
		report.Merge(layoutReport)
		if sc != nil {
			report.Merge(scene2d.ValidateScene(sc))
		}
	}

	printValidationReport(a.out, report)

	if !report.Valid {
		return fmt.Errorf("spec is invalid")
	}
	return nil
}

func (a *app) runLayout(projectPath string) error {
	sc, report, err := a.assemble(projectPath)
	if err != nil {
		return err
	}

	output := map[string]any{
		"validation": report,
		"scene":      sc,
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func (a *app) runRender(projectPath string) error {
	sc, _, err := a.assemble(projectPath)
	if err != nil {
		return err
	}

	opts := render.DefaultOptions()
	opts.Labels = a.cfg.Labels
	opts.Background = a.cfg.Background

	if a.cfg.Output == "" || a.cfg.Output == "-" {
		return render.SVG(a.out, sc, opts)
	}

	f, err := os.Create(a.cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := render.SVG(f, sc, opts); err != nil {
		f.Close()
		return fmt.Errorf("writing svg: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.logger.Info("wrote svg", "path", a.cfg.Output, "variant", sc.Metadata.Variant)
	return nil
}

func (a *app) runTable(projectPath string) error {
	sc, _, err := a.assemble(projectPath)
	if err != nil {
		return err
	}
	if err := printEntityTable(a.out, sc); err != nil {
		return err
	}
	fmt.Fprintln(a.out)
	return printSummary(a.out, sc)
}

func (a *app) runServe(projectPath string) error {
	if _, err := spec.LoadProject(projectPath); err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}
	srv := server.New(projectPath, a.cfg.Port, a.logger).WithVariant(a.cfg.Variant)
	return srv.Start()
}
