// Package peek runs the package managers' extractors concurrently and
// merges their output into one filtered AggregatedResult.
package peek

import (
	"context"
	"errors"
	"fmt"

	"github.com/ralt/pkpeek/internal/extractor"
	"github.com/ralt/pkpeek/internal/filter"
	"github.com/ralt/pkpeek/internal/models"
	"github.com/ralt/pkpeek/internal/scanner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Peeker discovers globally installed packages
type Peeker struct {
	Nvm  NvmSource
	Pnpm PackageSource
	Yarn PackageSource
	Node NodeVersionDetector
	Log  logrus.FieldLogger
}

// New wires the filesystem extractors for the roots in paths. A nil fs means
// the OS filesystem.
func New(paths models.Paths, fs afero.Fs) *Peeker {
	sc := scanner.NewFileSystemScanner(fs)
	return &Peeker{
		Nvm:  extractor.NewNvmExtractor(sc, paths.NvmDir),
		Pnpm: extractor.NewPnpmExtractor(sc, paths.PnpmHome),
		Yarn: extractor.NewYarnExtractor(sc, paths.YarnHome),
		Node: NodeCommand{},
		Log:  logrus.StandardLogger(),
	}
}

// Run extracts every requested source concurrently, then applies the name
// filter and the duplicates filter in that order.
//
// A source that is missing or fails degrades to an empty list plus a
// warning. Only configuration problems and a version prefix matching no
// installed Node version are returned as errors.
func (p *Peeker) Run(ctx context.Context, cfg models.PeekConfig) (models.AggregatedResult, error) {
	versionFilter, err := p.versionFilter(ctx, cfg)
	if err != nil {
		return models.AggregatedResult{}, err
	}

	result := models.AggregatedResult{
		NvmData:  []models.VersionGroup{},
		PnpmData: []models.PackageInfo{},
	}
	includeYarn := cfg.IncludeYarn && !cfg.CurrentVersionOnly && p.Yarn != nil
	if includeYarn {
		result.YarnData = []models.PackageInfo{}
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		groups, err := p.Nvm.Extract(ctx, versionFilter)
		if err != nil {
			if models.IsErrorType(err, models.ErrVersionNotFound) || isContextErr(err) {
				return err
			}
			p.warn(models.SourceNvm, err)
			return nil
		}
		if groups != nil {
			result.NvmData = groups
		}
		return nil
	})

	// "current version" only has meaning for nvm installs
	if !cfg.CurrentVersionOnly {
		g.Go(func() error {
			pkgs, err := p.extractFlat(ctx, p.Pnpm)
			if err != nil {
				return err
			}
			result.PnpmData = pkgs
			return nil
		})
	}

	if includeYarn {
		g.Go(func() error {
			pkgs, err := p.extractFlat(ctx, p.Yarn)
			if err != nil {
				return err
			}
			result.YarnData = pkgs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return models.AggregatedResult{}, err
	}

	p.logger().Debugf("found %d nvm versions, %d pnpm packages, %d yarn packages",
		len(result.NvmData), len(result.PnpmData), len(result.YarnData))

	if cfg.PackageNameFilter != "" {
		result = filter.ByName(result, cfg.PackageNameFilter)
	}
	if cfg.DuplicatesOnly {
		result = filter.DuplicatesOnly(result)
	}

	return result, nil
}

// versionFilter resolves the nvm version prefix from the configuration
func (p *Peeker) versionFilter(ctx context.Context, cfg models.PeekConfig) (string, error) {
	if cfg.CurrentVersionOnly && cfg.VersionPrefix != "" {
		return "", &models.PeekError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("cannot use both a node version prefix and the current version"),
		}
	}

	if !cfg.CurrentVersionOnly {
		return extractor.NormalizeVersion(cfg.VersionPrefix), nil
	}

	if p.Node == nil {
		return "", &models.PeekError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("no way to detect the current node version"),
		}
	}

	current, err := p.Node.CurrentVersion(ctx)
	if err != nil {
		return "", &models.PeekError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("failed to detect current node version: %w", err),
		}
	}
	return extractor.NormalizeVersion(current), nil
}

// extractFlat runs one flat source, turning failures into a warning and an
// empty list. Only cancellation is passed through.
func (p *Peeker) extractFlat(ctx context.Context, src PackageSource) ([]models.PackageInfo, error) {
	pkgs, err := src.Extract(ctx)
	if err != nil {
		if isContextErr(err) {
			return nil, err
		}
		p.warn(src.Source(), err)
		return []models.PackageInfo{}, nil
	}
	if pkgs == nil {
		return []models.PackageInfo{}, nil
	}
	return pkgs, nil
}

func (p *Peeker) warn(src models.Source, err error) {
	if models.IsSourceAbsent(err) {
		p.logger().Warnf("%s: skipping, %v", src, err)
		return
	}
	p.logger().Warnf("%s: extraction failed: %v", src, err)
}

func (p *Peeker) logger() logrus.FieldLogger {
	if p.Log == nil {
		return logrus.StandardLogger()
	}
	return p.Log
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
