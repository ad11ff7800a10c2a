package models

// Source identifies where a set of packages was discovered
type Source int

const (
	SourceNvm Source = iota
	SourcePnpm
	SourceYarn
)

// String returns the string representation of Source
func (s Source) String() string {
	switch s {
	case SourceNvm:
		return "nvm"
	case SourcePnpm:
		return "pnpm"
	case SourceYarn:
		return "yarn"
	default:
		return "unknown"
	}
}

// PackageInfo is the name/version pair read from a package.json
type PackageInfo struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// VersionGroup holds the global packages of one nvm-managed Node install.
// Version never carries a leading "v".
type VersionGroup struct {
	Version  string        `json:"version" yaml:"version"`
	Packages []PackageInfo `json:"packages" yaml:"packages"`
}

// AggregatedResult is everything discovered in one run, handed to the display layer
type AggregatedResult struct {
	NvmData  []VersionGroup `json:"nvm" yaml:"nvm"`
	PnpmData []PackageInfo  `json:"pnpm" yaml:"pnpm"`
	YarnData []PackageInfo  `json:"yarn,omitempty" yaml:"yarn,omitempty"`
}

// IsEmpty reports whether no source contributed any package
func (r AggregatedResult) IsEmpty() bool {
	for _, group := range r.NvmData {
		if len(group.Packages) > 0 {
			return false
		}
	}
	return len(r.PnpmData) == 0 && len(r.YarnData) == 0
}
