package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ralt/pkpeek/internal/models"
	"github.com/ralt/pkpeek/internal/scanner"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// YarnExtractor lists packages installed with `yarn global add`
type YarnExtractor struct {
	scanner  scanner.Scanner
	yarnPath string
}

// NewYarnExtractor creates an extractor rooted at yarnPath (usually $YARN_HOME)
func NewYarnExtractor(sc scanner.Scanner, yarnPath string) *YarnExtractor {
	return &YarnExtractor{scanner: sc, yarnPath: yarnPath}
}

// Source identifies this extractor
func (e *YarnExtractor) Source() models.Source {
	return models.SourceYarn
}

// yarnGlobalManifest is the part of the yarn global manifest we read.
// Dependencies stays raw so a non-string value is reported as a format error.
type yarnGlobalManifest struct {
	Dependencies json.RawMessage `json:"dependencies"`
}

// Extract resolves each entry of the global manifest's dependencies to its
// installed package.json. Dependencies that are not installed are dropped.
func (e *YarnExtractor) Extract(ctx context.Context) ([]models.PackageInfo, error) {
	manifestPath := e.manifestPath()

	data, err := e.scanner.ReadFile(manifestPath)
	if err != nil {
		return nil, &models.PeekError{
			Type:   models.ErrDirectoryNotFound,
			Source: models.SourceYarn,
			Path:   e.yarnPath,
			Err:    fmt.Errorf("could not access yarn global directory: %w", err),
		}
	}

	names, err := parseDependencies(data, manifestPath)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(names))
	for i, name := range names {
		p, err := e.packageJSONPath(name)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}

	logrus.Debugf("yarn: resolving %d dependencies from %s", len(names), manifestPath)

	results := make([]*models.PackageInfo, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if pkg, ok := e.scanner.ReadManifest(p); ok {
				results[i] = &pkg
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pkgs := make([]models.PackageInfo, 0, len(results))
	for _, r := range results {
		if r != nil {
			pkgs = append(pkgs, *r)
		}
	}
	return pkgs, nil
}

// manifestPath returns <yarnPath>/global when it is a file, otherwise the
// package.json inside the <yarnPath>/global directory.
func (e *YarnExtractor) manifestPath() string {
	globalPath := filepath.Join(e.yarnPath, "global")
	if e.scanner.IsDir(globalPath) {
		return filepath.Join(globalPath, scanner.ManifestFile)
	}
	return globalPath
}

func (e *YarnExtractor) packageJSONPath(name string) (string, error) {
	base := filepath.Join(e.yarnPath, "global", "node_modules")

	if scanner.IsScopeEntry(name) {
		scope, pkg, ok := strings.Cut(name, "/")
		if !ok || scope == "" || pkg == "" || strings.Contains(pkg, "/") {
			return "", &models.PeekError{
				Type:   models.ErrInvalidFormat,
				Source: models.SourceYarn,
				Path:   name,
				Err:    fmt.Errorf("invalid scoped package name"),
			}
		}
		return filepath.Join(base, scope, pkg, scanner.ManifestFile), nil
	}

	return filepath.Join(base, name, scanner.ManifestFile), nil
}

// parseDependencies returns the dependency names in manifest order. The
// field must be a flat object of string values.
func parseDependencies(data []byte, manifestPath string) ([]string, error) {
	formatErr := func(err error) error {
		return &models.PeekError{
			Type:   models.ErrInvalidFormat,
			Source: models.SourceYarn,
			Path:   manifestPath,
			Err:    fmt.Errorf("invalid dependencies format: expected an object of strings: %w", err),
		}
	}

	var m yarnGlobalManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, formatErr(err)
	}

	dec := json.NewDecoder(bytes.NewReader(m.Dependencies))
	tok, err := dec.Token()
	if err != nil {
		return nil, formatErr(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, formatErr(fmt.Errorf("got %v", tok))
	}

	var names []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, formatErr(err)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, formatErr(err)
		}
		if _, ok := valTok.(string); !ok {
			return nil, formatErr(fmt.Errorf("dependency %v has a non-string version", keyTok))
		}
		names = append(names, keyTok.(string))
	}

	return names, nil
}
