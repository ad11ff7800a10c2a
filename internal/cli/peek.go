package cli

import (
	"context"
	"fmt"

	"github.com/ralt/pkpeek/internal/config"
	"github.com/ralt/pkpeek/internal/display"
	"github.com/ralt/pkpeek/internal/models"
	"github.com/ralt/pkpeek/internal/peek"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type peekFlags struct {
	current     bool
	nodeVersion string
	duplicates  bool
	yarn        bool
	format      string
	noColor     bool
}

func addPeekFlags(cmd *cobra.Command, opts Options) {
	var flags peekFlags

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var packageName string
		if len(args) > 0 {
			packageName = args[0]
		}

		cfg, renderOpts, err := buildConfig(flags, packageName, opts)
		if err != nil {
			return err
		}

		logrus.Debugf("Configuration: %+v", cfg)

		return runPeek(cmd, cfg, renderOpts, opts)
	}

	cmd.Flags().BoolVarP(&flags.current, "current", "c", false, "Peek the currently active Node version (nvm packages only)")
	cmd.Flags().StringVarP(&flags.nodeVersion, "node-version", "n", "", `Node version prefix to peek (e.g. "22" matches "22.x.x")`)
	cmd.Flags().BoolVarP(&flags.duplicates, "duplicates", "d", false, "Only show packages installed in more than one place")
	cmd.Flags().BoolVarP(&flags.yarn, "yarn", "y", false, "Include the yarn global store")
	cmd.Flags().StringVarP(&flags.format, "format", "f", string(display.FormatPretty), "Output format (pretty, unix, json, yaml)")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output (only affects pretty format)")

	cmd.MarkFlagsMutuallyExclusive("current", "node-version")
}

func buildConfig(flags peekFlags, packageName string, opts Options) (models.PeekConfig, display.Options, error) {
	if flags.current && flags.nodeVersion != "" {
		return models.PeekConfig{}, display.Options{}, &models.PeekError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("cannot use both --node-version and --current"),
		}
	}

	format, err := display.ParseFormat(flags.format)
	if err != nil {
		return models.PeekConfig{}, display.Options{}, &models.PeekError{Type: models.ErrInvalidConfig, Err: err}
	}

	paths, err := config.ResolvePaths(opts.Env)
	if err != nil {
		return models.PeekConfig{}, display.Options{}, err
	}

	cfg := models.PeekConfig{
		CurrentVersionOnly: flags.current,
		VersionPrefix:      flags.nodeVersion,
		PackageNameFilter:  packageName,
		DuplicatesOnly:     flags.duplicates,
		IncludeYarn:        flags.yarn,
		Paths:              paths,
	}

	return cfg, display.Options{Format: format, Color: !flags.noColor}, nil
}

func runPeek(cmd *cobra.Command, cfg models.PeekConfig, renderOpts display.Options, opts Options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logrus.Debugf("nvm: %s, pnpm: %s, yarn: %s", cfg.Paths.NvmDir, cfg.Paths.PnpmHome, cfg.Paths.YarnHome)

	p := peek.New(cfg.Paths, opts.Fs)
	if opts.Node != nil {
		p.Node = opts.Node
	}

	result, err := p.Run(ctx, cfg)
	if err != nil {
		return err
	}

	if result.IsEmpty() {
		logrus.Debug("No global packages found")
	}

	return display.Render(cmd.OutOrStdout(), result, renderOpts)
}
