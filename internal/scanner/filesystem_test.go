package scanner

import (
	"context"
	"testing"

	"github.com/ralt/pkpeek/internal/models"
	"github.com/ralt/pkpeek/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanPackageDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := "/lib/node_modules"
	testutil.WriteManifest(t, fs, root+"/npm", "npm", "10.2.0")
	testutil.WriteManifest(t, fs, root+"/@antfu/ni", "@antfu/ni", "27.0.0")
	testutil.WriteManifest(t, fs, root+"/@antfu/utils", "@antfu/utils", "9.0.0")
	testutil.WriteFile(t, fs, root+"/broken/package.json", []byte("not json"))
	testutil.EnsureDir(t, fs, root+"/empty")

	sc := NewFileSystemScanner(fs)
	entries, err := sc.ReadDirNames(root)
	require.NoError(t, err)

	pkgs, err := sc.ScanPackageDirectory(context.Background(), root, entries)
	require.NoError(t, err)

	assert.Equal(t, []models.PackageInfo{
		{Name: "@antfu/ni", Version: "27.0.0"},
		{Name: "@antfu/utils", Version: "9.0.0"},
		{Name: "npm", Version: "10.2.0"},
	}, pkgs)
}

func TestScanPackageDirectoryScopeIsAFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := "/lib/node_modules"
	testutil.WriteFile(t, fs, root+"/@weird", []byte("not a directory"))
	testutil.WriteManifest(t, fs, root+"/tsx", "tsx", "4.0.0")

	sc := NewFileSystemScanner(fs)
	pkgs, err := sc.ScanPackageDirectory(context.Background(), root, []string{"@weird", "tsx"})
	require.NoError(t, err)
	assert.Equal(t, []models.PackageInfo{{Name: "tsx", Version: "4.0.0"}}, pkgs)
}

func TestScanPackageDirectoryNoEntries(t *testing.T) {
	sc := NewFileSystemScanner(afero.NewMemMapFs())
	pkgs, err := sc.ScanPackageDirectory(context.Background(), "/anywhere", nil)
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestScanPackageDirectoryCanceled(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteManifest(t, fs, "/nm/a", "a", "1.0.0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc := NewFileSystemScanner(fs)
	_, err := sc.ScanPackageDirectory(ctx, "/nm", []string{"a"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanPackageDirectoryOnDisk(t *testing.T) {
	root := t.TempDir()
	osFs := afero.NewOsFs()
	testutil.WriteManifest(t, osFs, root+"/eslint", "eslint", "9.0.0")
	testutil.WriteManifest(t, osFs, root+"/@types/node", "@types/node", "20.11.0")

	sc := NewFileSystemScanner(nil)
	entries, err := sc.ReadDirNames(root)
	require.NoError(t, err)

	pkgs, err := sc.ScanPackageDirectory(context.Background(), root, entries)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.PackageInfo{
		{Name: "eslint", Version: "9.0.0"},
		{Name: "@types/node", Version: "20.11.0"},
	}, pkgs)
}

func TestIsDirAndIsScopeEntry(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.EnsureDir(t, fs, "/d")
	testutil.WriteFile(t, fs, "/f", []byte("x"))

	sc := NewFileSystemScanner(fs)
	assert.True(t, sc.IsDir("/d"))
	assert.False(t, sc.IsDir("/f"))
	assert.False(t, sc.IsDir("/missing"))

	assert.True(t, IsScopeEntry("@types"))
	assert.False(t, IsScopeEntry("types"))
	assert.False(t, IsScopeEntry(""))
}
