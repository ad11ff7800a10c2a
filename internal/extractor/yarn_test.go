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

const yarnHome = "/home/user/.config/yarn"

func newYarn(fs afero.Fs) *YarnExtractor {
	return NewYarnExtractor(scanner.NewFileSystemScanner(fs), yarnHome)
}

func TestYarnMissingDirectory(t *testing.T) {
	_, err := newYarn(afero.NewMemMapFs()).Extract(context.Background())
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrDirectoryNotFound))
}

func TestYarnExtractFromGlobalDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.YarnGlobal(t, fs, yarnHome, map[string]string{
		"@vue/cli":   "5.0.8",
		"typescript": "5.4.2",
	})

	pkgs, err := newYarn(fs).Extract(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.PackageInfo{
		{Name: "@vue/cli", Version: "5.0.8"},
		{Name: "typescript", Version: "5.4.2"},
	}, pkgs)
}

func TestYarnGlobalManifestAsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, yarnHome+"/global", []byte(`{"dependencies":{"serve":"^14.0.0"}}`))

	// Nothing can be installed below a global file, so every dependency is dropped.
	pkgs, err := newYarn(fs).Extract(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestYarnKeepsManifestOrderAndDropsUninstalled(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, yarnHome+"/global/package.json",
		[]byte(`{"dependencies":{"zx":"^8.0.0","not-installed":"^1.0.0","@antfu/ni":"^27.0.0"}}`))
	testutil.WriteManifest(t, fs, yarnHome+"/global/node_modules/zx", "zx", "8.1.0")
	testutil.WriteManifest(t, fs, yarnHome+"/global/node_modules/@antfu/ni", "@antfu/ni", "27.0.0")

	pkgs, err := newYarn(fs).Extract(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.PackageInfo{
		{Name: "zx", Version: "8.1.0"},
		{Name: "@antfu/ni", Version: "27.0.0"},
	}, pkgs)
}

func TestYarnInvalidDependenciesFormat(t *testing.T) {
	cases := map[string]string{
		"missing":       `{"name":"global"}`,
		"array":         `{"dependencies":["zx"]}`,
		"nested object": `{"dependencies":{"zx":{"version":"8.0.0"}}}`,
		"number value":  `{"dependencies":{"zx":8}}`,
		"not json":      `dependencies: zx`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			testutil.WriteFile(t, fs, yarnHome+"/global/package.json", []byte(doc))

			_, err := newYarn(fs).Extract(context.Background())
			require.Error(t, err)
			assert.True(t, models.IsErrorType(err, models.ErrInvalidFormat))
		})
	}
}

func TestYarnInvalidScopedName(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, yarnHome+"/global/package.json", []byte(`{"dependencies":{"@lonely":"^1.0.0"}}`))

	_, err := newYarn(fs).Extract(context.Background())
	require.Error(t, err)
	assert.True(t, models.IsErrorType(err, models.ErrInvalidFormat))
}
