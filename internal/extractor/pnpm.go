package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ralt/pkpeek/internal/models"
	"github.com/ralt/pkpeek/internal/scanner"
	"github.com/sirupsen/logrus"
)

// PnpmExtractor lists packages from the pnpm global store
type PnpmExtractor struct {
	scanner  scanner.Scanner
	pnpmPath string
}

// NewPnpmExtractor creates an extractor rooted at pnpmPath (usually $PNPM_HOME)
func NewPnpmExtractor(sc scanner.Scanner, pnpmPath string) *PnpmExtractor {
	return &PnpmExtractor{scanner: sc, pnpmPath: pnpmPath}
}

// Source identifies this extractor
func (e *PnpmExtractor) Source() models.Source {
	return models.SourcePnpm
}

// GlobalPath returns <pnpmPath>/global
func (e *PnpmExtractor) GlobalPath() string {
	return filepath.Join(e.pnpmPath, "global")
}

// Extract returns the packages of the highest numbered layout directory.
// Lower numbers are left over from older pnpm releases and are ignored.
func (e *PnpmExtractor) Extract(ctx context.Context) ([]models.PackageInfo, error) {
	layout, err := e.highestLayoutVersion()
	if err != nil {
		return nil, err
	}

	nodeModulesPath := filepath.Join(e.GlobalPath(), strconv.Itoa(layout), "node_modules")
	logrus.Debugf("pnpm: using layout %d at %s", layout, nodeModulesPath)

	entries, err := e.scanner.ReadDirNames(nodeModulesPath)
	if err != nil {
		logrus.Debugf("pnpm: cannot list %s: %v", nodeModulesPath, err)
		return []models.PackageInfo{}, nil
	}

	return e.scanner.ScanPackageDirectory(ctx, nodeModulesPath, entries)
}

func (e *PnpmExtractor) highestLayoutVersion() (int, error) {
	globalPath := e.GlobalPath()

	infos, err := e.scanner.ReadDir(globalPath)
	if err != nil {
		return 0, &models.PeekError{
			Type:   models.ErrDirectoryNotFound,
			Source: models.SourcePnpm,
			Path:   globalPath,
			Err:    fmt.Errorf("could not access pnpm global directory: %w", err),
		}
	}

	highest, found := 0, false
	for _, info := range infos {
		if !info.IsDir() || !isAllDigits(info.Name()) {
			continue
		}
		n, err := strconv.Atoi(info.Name())
		if err != nil {
			continue
		}
		if !found || n > highest {
			highest, found = n, true
		}
	}

	if !found {
		return 0, &models.PeekError{
			Type:   models.ErrNoLayoutVersions,
			Source: models.SourcePnpm,
			Path:   globalPath,
			Err:    fmt.Errorf("no global layout versions found in pnpm global directory"),
		}
	}

	return highest, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
