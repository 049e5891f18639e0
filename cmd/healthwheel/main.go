package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the resolved settings into each command.
type app struct {
	v      *viper.Viper
	cfg    *Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer // reports that must not mix into JSON or SVG on out
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "healthwheel",
		Short:         "Radial layout engine for health dashboard visualizations",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file")
	pf.Float64("time-ms", 0, "Render-loop time in milliseconds (drives rotation)")
	pf.StringSlice("highlight", nil, "Entity ids to highlight")
	pf.String("variant", "", "Override the spec's visualization variant")
	pf.String("log-level", DefaultLogLevel, "Log level: debug, info, warn or error")
	pf.String("color", "auto", "Colored output (yes/no/auto)")
	if err := a.v.BindPFlags(pf); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(layoutCmd(a))
	rootCmd.AddCommand(validateCmd(a))
	rootCmd.AddCommand(renderCmd(a))
	rootCmd.AddCommand(tableCmd(a))
	rootCmd.AddCommand(variantsCmd(a))
	rootCmd.AddCommand(serveCmd(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg, err := loadConfig(a.v)
	if err != nil {
		return err
	}
	if err := applyColor(cfg.Color); err != nil {
		return err
	}
	logger, err := newLogger(stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.out = cmd.OutOrStdout()
	a.errOut = cmd.ErrOrStderr()
	return nil
}

func projectArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "."
}

func layoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layout [project-path]",
		Short: "Run one layout pass and print the scene as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runLayout(projectArg(args))
		},
	}
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a wheel spec without rendering it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runValidate(projectArg(args))
		},
	}
}

func renderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [project-path]",
		Short: "Render the wheel as an SVG document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runRender(projectArg(args))
		},
	}
	cmd.Flags().StringP("output", "o", "-", "Output file (- for stdout)")
	cmd.Flags().Bool("labels", true, "Draw entity labels")
	cmd.Flags().String("background", "", "Background fill color")
	return cmd
}

func tableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table [project-path]",
		Short: "Print placed entities and the score summary as tables",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runTable(projectArg(args))
		},
	}
}

func variantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the built-in visualization variants",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return printVariantTable(a.out)
		},
	}
}

func serveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with a live SVG preview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.runServe(projectArg(args))
		},
	}
	cmd.Flags().IntP("port", "p", DefaultPort, "HTTP server port")
	return cmd
}
