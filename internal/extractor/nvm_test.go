package extractor

import (
	"context"
	"testing"

	"github.com/ralt/pkpeek/internal/models"
	"github.com/ralt/pkpeek/internal/scanner"
	"github.com/ralt/pkpeek/internal/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nvmDir = "/home/user/.nvm"

func newNvm(fs afero.Fs) *NvmExtractor {
	return NewNvmExtractor(scanner.NewFileSystemScanner(fs), nvmDir)
}

func TestNvmMissingDirectory(t *testing.T) {
	_, err := newNvm(afero.NewMemMapFs()).Extract(context.Background(), "")
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrDirectoryNotFound))
	assert.Contains(t, err.Error(), "/home/user/.nvm/versions/node")
}

func TestNvmNoVersionsInstalled(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.EnsureDir(t, fs, nvmDir+"/versions/node")

	_, err := newNvm(fs).Extract(context.Background(), "")
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrNoVersionsInstalled))
}

func TestNvmExtractAllVersions(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.NvmPackage(t, fs, nvmDir, "20.10.0", "npm", "10.2.0")
	testutil.NvmPackage(t, fs, nvmDir, "v22.0.0", "pnpm", "9.0.0")
	testutil.NvmPackage(t, fs, nvmDir, "v22.0.0", "tsx", "4.0.0")

	groups, err := newNvm(fs).Extract(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, []models.VersionGroup{
		{Version: "20.10.0", Packages: []models.PackageInfo{{Name: "npm", Version: "10.2.0"}}},
		{Version: "22.0.0", Packages: []models.PackageInfo{
			{Name: "pnpm", Version: "9.0.0"},
			{Name: "tsx", Version: "4.0.0"},
		}},
	}, groups)
}

func TestNvmVersionPrefixFilter(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.NvmPackage(t, fs, nvmDir, "v20.10.0", "npm", "10.2.0")
	testutil.NvmPackage(t, fs, nvmDir, "v22.4.1", "npm", "10.8.1")
	testutil.NvmPackage(t, fs, nvmDir, "v22.0.0", "npm", "10.5.1")

	groups, err := newNvm(fs).Extract(context.Background(), "22")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "22.0.0", groups[0].Version)
	assert.Equal(t, "22.4.1", groups[1].Version)

	groups, err = newNvm(fs).Extract(context.Background(), "v20.10")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "20.10.0", groups[0].Version)
}

func TestNvmVersionPrefixNoMatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.NvmPackage(t, fs, nvmDir, "18.0.0", "npm", "9.0.0")
	testutil.NvmPackage(t, fs, nvmDir, "20.10.0", "npm", "10.2.0")

	_, err := newNvm(fs).Extract(context.Background(), "99")
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrVersionNotFound))
	assert.False(t, models.IsSourceAbsent(err))
	assert.Contains(t, err.Error(), "could not find version with prefix: 99")
	assert.Contains(t, err.Error(), "18.0.0, 20.10.0")
}

func TestNvmUnreadableNodeModulesYieldsEmptyGroup(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.EnsureDir(t, fs, nvmDir+"/versions/node/v21.0.0")
	testutil.NvmPackage(t, fs, nvmDir, "v20.0.0", "npm", "10.0.0")

	groups, err := newNvm(fs).Extract(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "21.0.0", groups[1].Version)
	assert.Empty(t, groups[1].Packages)
	assert.NotNil(t, groups[1].Packages)
}

func TestNvmIgnoresStrayFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, nvmDir+"/versions/node/.DS_Store", []byte{})

	_, err := newNvm(fs).Extract(context.Background(), "")
	assert.True(t, models.IsErrorType(err, models.ErrNoVersionsInstalled))
}

func TestNvmScopedPackages(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.NvmPackage(t, fs, nvmDir, "v20.0.0", "@types/node", "20.11.0")
	testutil.NvmPackage(t, fs, nvmDir, "v20.0.0", "@vue/cli", "5.0.8")

	groups, err := newNvm(fs).Extract(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, []models.PackageInfo{
		{Name: "@types/node", Version: "20.11.0"},
		{Name: "@vue/cli", Version: "5.0.8"},
	}, groups[0].Packages)
}
