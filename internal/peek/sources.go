//go:generate mockgen -destination=./mocks/peek.go . NvmSource,PackageSource,NodeVersionDetector
package peek

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ralt/pkpeek/internal/models"
)

// NvmSource extracts packages grouped by Node version
type NvmSource interface {
	// Extract returns the version groups whose version starts with versionFilter
	Extract(ctx context.Context, versionFilter string) ([]models.VersionGroup, error)
}

// PackageSource extracts a flat package list from one package manager
type PackageSource interface {
	// Extract returns every package the manager has installed globally
	Extract(ctx context.Context) ([]models.PackageInfo, error)

	// Source identifies the package manager
	Source() models.Source
}

// NodeVersionDetector reports the version of the Node runtime on PATH
type NodeVersionDetector interface {
	CurrentVersion(ctx context.Context) (string, error)
}

// NodeCommand detects the current Node version by running `node --version`
type NodeCommand struct {
	Binary string
}

// CurrentVersion returns the output of `<binary> --version`, e.g. "v20.10.0"
func (n NodeCommand) CurrentVersion(ctx context.Context) (string, error) {
	binary := n.Binary
	if binary == "" {
		binary = "node"
	}

	out, err := exec.CommandContext(ctx, binary, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("failed to run %s --version: %w", binary, err)
	}

	v := strings.TrimSpace(string(out))
	if v == "" {
		return "", fmt.Errorf("%s --version printed nothing", binary)
	}
	return v, nil
}
