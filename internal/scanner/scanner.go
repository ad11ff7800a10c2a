package scanner

import (
	"context"
	"os"

	"github.com/ralt/pkpeek/internal/models"
)

// ManifestFile is the per-package metadata file read by the scanner
const ManifestFile = "package.json"

// Scanner reads node_modules-style directories and package manifests
type Scanner interface {
	// ReadManifest reads one package.json, reporting false on any failure
	ReadManifest(path string) (models.PackageInfo, bool)

	// ScanPackageDirectory resolves every entry of a node_modules directory into packages
	ScanPackageDirectory(ctx context.Context, nodeModulesPath string, entries []string) ([]models.PackageInfo, error)

	// ReadDirNames lists the entry names of a directory
	ReadDirNames(path string) ([]string, error)

	// ReadDir lists the entries of a directory with type information
	ReadDir(path string) ([]os.FileInfo, error)

	// ReadFile returns the contents of a file
	ReadFile(path string) ([]byte, error)

	// IsDir reports whether path exists and is a directory
	IsDir(path string) bool
}

// IsScopeEntry reports whether a node_modules entry is an @scope directory
func IsScopeEntry(entry string) bool {
	return len(entry) > 0 && entry[0] == '@'
}
