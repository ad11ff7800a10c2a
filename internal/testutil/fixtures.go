// Package testutil builds package-manager directory layouts for tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// WriteFile writes data to a file, creating directories as needed
func WriteFile(t testing.TB, fs afero.Fs, path string, data []byte) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// WriteManifest writes a package.json holding name and version into packageDir
func WriteManifest(t testing.TB, fs afero.Fs, packageDir, name, version string) {
	t.Helper()
	data, err := json.Marshal(map[string]string{"name": name, "version": version})
	if err != nil {
		t.Fatalf("Failed to encode manifest: %v", err)
	}
	WriteFile(t, fs, filepath.Join(packageDir, "package.json"), data)
}

// EnsureDir creates path and its parents
func EnsureDir(t testing.TB, fs afero.Fs, path string) {
	t.Helper()
	if err := fs.MkdirAll(path, os.ModePerm); err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
}

// NvmPackage writes a package into an nvm layout under nvmDir for the given version directory
func NvmPackage(t testing.TB, fs afero.Fs, nvmDir, versionDir, name, version string) {
	t.Helper()
	WriteManifest(t, fs, filepath.Join(nvmDir, "versions", "node", versionDir, "lib", "node_modules", filepath.FromSlash(name)), name, version)
}

// PnpmPackage writes a package into a pnpm global layout under pnpmHome
func PnpmPackage(t testing.TB, fs afero.Fs, pnpmHome, layout, name, version string) {
	t.Helper()
	WriteManifest(t, fs, filepath.Join(pnpmHome, "global", layout, "node_modules", filepath.FromSlash(name)), name, version)
}

// YarnGlobal writes the yarn global manifest and an installed package for every dependency
func YarnGlobal(t testing.TB, fs afero.Fs, yarnHome string, deps map[string]string) {
	t.Helper()
	data, err := json.Marshal(map[string]any{"dependencies": deps})
	if err != nil {
		t.Fatalf("Failed to encode yarn manifest: %v", err)
	}
	WriteFile(t, fs, filepath.Join(yarnHome, "global", "package.json"), data)
	for name, version := range deps {
		WriteManifest(t, fs, filepath.Join(yarnHome, "global", "node_modules", filepath.FromSlash(name)), name, version)
	}
}
