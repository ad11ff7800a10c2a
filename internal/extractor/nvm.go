package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ralt/pkpeek/internal/models"
	"github.com/ralt/pkpeek/internal/scanner"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// NvmExtractor lists the global packages of every nvm-managed Node install
type NvmExtractor struct {
	scanner scanner.Scanner
	nvmPath string
}

// NewNvmExtractor creates an extractor rooted at nvmPath (usually $NVM_DIR)
func NewNvmExtractor(sc scanner.Scanner, nvmPath string) *NvmExtractor {
	return &NvmExtractor{scanner: sc, nvmPath: nvmPath}
}

// VersionsPath returns <nvmPath>/versions/node
func (e *NvmExtractor) VersionsPath() string {
	return filepath.Join(e.nvmPath, "versions", "node")
}

// Extract returns one VersionGroup per installed Node version whose
// normalized version starts with versionFilter (all versions when empty).
// Groups come back in ascending version order.
func (e *NvmExtractor) Extract(ctx context.Context, versionFilter string) ([]models.VersionGroup, error) {
	detected, err := e.detectVersions()
	if err != nil {
		return nil, err
	}

	selected, err := filterVersions(detected, NormalizeVersion(versionFilter), e.VersionsPath())
	if err != nil {
		return nil, err
	}

	logrus.Debugf("nvm: extracting %d of %d versions from %s", len(selected), len(detected), e.VersionsPath())

	groups := make([]models.VersionGroup, len(selected))
	g, ctx := errgroup.WithContext(ctx)

	for i, dir := range selected {
		i, dir := i, dir
		g.Go(func() error {
			pkgs, err := e.extractVersion(ctx, dir)
			if err != nil {
				return err
			}
			groups[i] = models.VersionGroup{Version: NormalizeVersion(dir), Packages: pkgs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return groups, nil
}

func (e *NvmExtractor) detectVersions() ([]string, error) {
	versionsPath := e.VersionsPath()

	infos, err := e.scanner.ReadDir(versionsPath)
	if err != nil {
		return nil, &models.PeekError{
			Type:   models.ErrDirectoryNotFound,
			Source: models.SourceNvm,
			Path:   versionsPath,
			Err:    fmt.Errorf("could not access nvm node versions directory: %w", err),
		}
	}

	var dirs []string
	for _, info := range infos {
		if info.IsDir() {
			dirs = append(dirs, info.Name())
		}
	}

	if len(dirs) == 0 {
		return nil, &models.PeekError{
			Type:   models.ErrNoVersionsInstalled,
			Source: models.SourceNvm,
			Path:   versionsPath,
			Err:    fmt.Errorf("could not find any node version installed"),
		}
	}

	return SortVersionDirs(dirs), nil
}

// filterVersions keeps the directories whose normalized name starts with
// prefix. Directory names are returned untouched so they can be joined back
// onto the versions path whether or not they carry a "v".
func filterVersions(dirs []string, prefix, versionsPath string) ([]string, error) {
	if prefix == "" {
		return dirs, nil
	}

	var matching []string
	for _, d := range dirs {
		if strings.HasPrefix(NormalizeVersion(d), prefix) {
			matching = append(matching, d)
		}
	}

	if len(matching) == 0 {
		return nil, &models.PeekError{
			Type:   models.ErrVersionNotFound,
			Source: models.SourceNvm,
			Path:   versionsPath,
			Err: fmt.Errorf("could not find version with prefix: %s\ndetected versions: %s",
				prefix, strings.Join(dirs, ", ")),
		}
	}

	return matching, nil
}

// extractVersion scans one version's lib/node_modules. An unreadable
// node_modules yields an empty group rather than an error.
func (e *NvmExtractor) extractVersion(ctx context.Context, dir string) ([]models.PackageInfo, error) {
	nodeModulesPath := filepath.Join(e.VersionsPath(), dir, "lib", "node_modules")

	entries, err := e.scanner.ReadDirNames(nodeModulesPath)
	if err != nil {
		logrus.Debugf("nvm: cannot list %s: %v", nodeModulesPath, err)
		return []models.PackageInfo{}, nil
	}

	return e.scanner.ScanPackageDirectory(ctx, nodeModulesPath, entries)
}
