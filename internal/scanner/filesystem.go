package scanner

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ralt/pkpeek/internal/models"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// maxParallelReads bounds concurrent file reads within one directory
const maxParallelReads = 32

// FileSystemScanner implements Scanner on top of an afero filesystem
type FileSystemScanner struct {
	fs afero.Fs
}

// NewFileSystemScanner creates a scanner over fs. A nil fs means the OS filesystem.
func NewFileSystemScanner(fs afero.Fs) *FileSystemScanner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileSystemScanner{fs: fs}
}

// ReadManifest reads one package.json
func (s *FileSystemScanner) ReadManifest(path string) (models.PackageInfo, bool) {
	return ReadPackageManifest(s.fs, path)
}

// ScanPackageDirectory reads every package below nodeModulesPath named in
// entries. Entries starting with "@" are scope directories whose children are
// packages. Entries are read concurrently; the result keeps the order of
// entries and drops anything without a valid manifest.
func (s *FileSystemScanner) ScanPackageDirectory(ctx context.Context, nodeModulesPath string, entries []string) ([]models.PackageInfo, error) {
	results := make([][]models.PackageInfo, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)

	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if IsScopeEntry(entry) {
				pkgs, err := s.scanScope(ctx, filepath.Join(nodeModulesPath, entry))
				if err != nil {
					return err
				}
				results[i] = pkgs
				return nil
			}
			results[i] = s.readSingle(filepath.Join(nodeModulesPath, entry))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return flatten(results), nil
}

// scanScope reads every package inside an @scope directory. A scope that
// cannot be listed contributes nothing.
func (s *FileSystemScanner) scanScope(ctx context.Context, scopePath string) ([]models.PackageInfo, error) {
	names, err := s.ReadDirNames(scopePath)
	if err != nil {
		return nil, nil
	}

	results := make([][]models.PackageInfo, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.readSingle(filepath.Join(scopePath, name))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return flatten(results), nil
}

func (s *FileSystemScanner) readSingle(packageDir string) []models.PackageInfo {
	pkg, ok := s.ReadManifest(filepath.Join(packageDir, ManifestFile))
	if !ok {
		return nil
	}
	return []models.PackageInfo{pkg}
}

// ReadDirNames lists the entry names of a directory, sorted by name
func (s *FileSystemScanner) ReadDirNames(path string) ([]string, error) {
	infos, err := afero.ReadDir(s.fs, path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}

// ReadDir lists the entries of a directory with type information
func (s *FileSystemScanner) ReadDir(path string) ([]os.FileInfo, error) {
	return afero.ReadDir(s.fs, path)
}

// ReadFile returns the contents of a file
func (s *FileSystemScanner) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(s.fs, path)
}

// IsDir reports whether path exists and is a directory
func (s *FileSystemScanner) IsDir(path string) bool {
	ok, err := afero.IsDir(s.fs, path)
	return err == nil && ok
}

func flatten(parts [][]models.PackageInfo) []models.PackageInfo {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]models.PackageInfo, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
