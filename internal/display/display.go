// Package display renders an AggregatedResult for the terminal or for scripts.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ralt/pkpeek/internal/models"
	"gopkg.in/yaml.v3"
)

// Format selects how results are written
type Format string

const (
	FormatPretty Format = "pretty"
	FormatUnix   Format = "unix"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// Formats lists every supported format
var Formats = []Format{FormatPretty, FormatUnix, FormatJSON, FormatYAML}

// ParseFormat validates a user supplied format name
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (expected one of %s)", s, joinFormats())
}

func joinFormats() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Options configures rendering
type Options struct {
	Format Format
	// Color only affects the pretty format
	Color bool
}

// Render writes result to w in the requested format
func Render(w io.Writer, result models.AggregatedResult, opts Options) error {
	switch opts.Format {
	case FormatPretty, "":
		return renderPretty(w, result, opts.Color)
	case FormatUnix:
		return renderUnix(w, result)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
}

type section struct {
	title    string
	packages []models.PackageInfo
}

func sections(result models.AggregatedResult) []section {
	var out []section
	for _, group := range result.NvmData {
		out = append(out, section{title: "Node " + group.Version, packages: group.Packages})
	}
	if len(result.PnpmData) > 0 {
		out = append(out, section{title: "pnpm global", packages: result.PnpmData})
	}
	if len(result.YarnData) > 0 {
		out = append(out, section{title: "yarn global", packages: result.YarnData})
	}
	return out
}

func renderPretty(w io.Writer, result models.AggregatedResult, color bool) error {
	header := func(s string) string { return s }
	dim := func(s string) string { return s }
	if color {
		r := lipgloss.NewRenderer(w)
		headerStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
		dimStyle := r.NewStyle().Faint(true)
		header = func(s string) string { return headerStyle.Render(s) }
		dim = func(s string) string { return dimStyle.Render(s) }
	}

	all := sections(result)

	width := 0
	for _, s := range all {
		for _, pkg := range s.packages {
			width = max(width, len(pkg.Name))
		}
	}

	for _, s := range all {
		if _, err := fmt.Fprintln(w, header("▸ "+s.title)); err != nil {
			return err
		}
		for _, pkg := range s.packages {
			if _, err := fmt.Fprintf(w, "    %-*s%s\n", width+2, pkg.Name, dim(pkg.Version)); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderUnix(w io.Writer, result models.AggregatedResult) error {
	write := func(label string, pkgs []models.PackageInfo) error {
		for _, pkg := range pkgs {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", label, pkg.Name, pkg.Version); err != nil {
				return err
			}
		}
		return nil
	}

	for _, group := range result.NvmData {
		if err := write(group.Version, group.Packages); err != nil {
			return err
		}
	}
	if err := write(models.SourcePnpm.String(), result.PnpmData); err != nil {
		return err
	}
	return write(models.SourceYarn.String(), result.YarnData)
}
