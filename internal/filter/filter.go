// Package filter narrows an AggregatedResult by package name or by
// packages that appear more than once across all sources.
package filter

import (
	"strings"

	"github.com/ralt/pkpeek/internal/models"
)

// ByName keeps packages whose name contains needle, ignoring case. Version
// groups left without packages are dropped.
func ByName(result models.AggregatedResult, needle string) models.AggregatedResult {
	needle = strings.ToLower(needle)
	return keep(result, func(pkg models.PackageInfo) bool {
		return strings.Contains(strings.ToLower(pkg.Name), needle)
	})
}

// DuplicatesOnly keeps packages whose name occurs more than once across
// every nvm version group, pnpm and yarn. The same name under two Node
// versions counts twice.
func DuplicatesOnly(result models.AggregatedResult) models.AggregatedResult {
	counts := make(map[string]int)
	for _, group := range result.NvmData {
		for _, pkg := range group.Packages {
			counts[pkg.Name]++
		}
	}
	for _, pkg := range result.PnpmData {
		counts[pkg.Name]++
	}
	for _, pkg := range result.YarnData {
		counts[pkg.Name]++
	}

	return keep(result, func(pkg models.PackageInfo) bool {
		return counts[pkg.Name] > 1
	})
}

func keep(result models.AggregatedResult, pred func(models.PackageInfo) bool) models.AggregatedResult {
	out := models.AggregatedResult{
		NvmData:  []models.VersionGroup{},
		PnpmData: keepPackages(result.PnpmData, pred),
		YarnData: keepPackages(result.YarnData, pred),
	}

	for _, group := range result.NvmData {
		pkgs := keepPackages(group.Packages, pred)
		if len(pkgs) == 0 {
			continue
		}
		out.NvmData = append(out.NvmData, models.VersionGroup{Version: group.Version, Packages: pkgs})
	}

	return out
}

func keepPackages(pkgs []models.PackageInfo, pred func(models.PackageInfo) bool) []models.PackageInfo {
	if pkgs == nil {
		return nil
	}
	kept := make([]models.PackageInfo, 0, len(pkgs))
	for _, pkg := range pkgs {
		if pred(pkg) {
			kept = append(kept, pkg)
		}
	}
	return kept
}
