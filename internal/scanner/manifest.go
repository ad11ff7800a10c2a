package scanner

import (
	"encoding/json"

	"github.com/ralt/pkpeek/internal/models"
	"github.com/spf13/afero"
)

// manifest is the subset of package.json we care about. Pointers tell a
// missing or null field apart from an empty string.
type manifest struct {
	Name    *string `json:"name"`
	Version *string `json:"version"`
}

// ReadPackageManifest reads the package.json at path. Any failure (missing
// file, invalid JSON, non-string name or version) yields false; one broken
// package must never abort a scan.
func ReadPackageManifest(fs afero.Fs, path string) (models.PackageInfo, bool) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return models.PackageInfo{}, false
	}
	return DecodeManifest(data)
}

// DecodeManifest decodes raw package.json bytes into a PackageInfo
func DecodeManifest(data []byte) (models.PackageInfo, bool) {
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return models.PackageInfo{}, false
	}
	if m.Name == nil || m.Version == nil {
		return models.PackageInfo{}, false
	}
	return models.PackageInfo{Name: *m.Name, Version: *m.Version}, true
}
