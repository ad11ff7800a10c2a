package models

// Paths holds the resolved root directory of each package manager
type Paths struct {
	NvmDir   string
	PnpmHome string
	YarnHome string
}

// PeekConfig is the resolved configuration for one discovery run.
// It is built once by the CLI layer and passed by value.
type PeekConfig struct {
	// Restrict nvm to the running Node version and skip pnpm/yarn entirely
	CurrentVersionOnly bool

	// Node version prefix ("22" matches "22.4.1"), empty for all versions
	VersionPrefix string

	// Case-insensitive substring match on package names, empty for no filter
	PackageNameFilter string

	// Keep only packages present in more than one place
	DuplicatesOnly bool

	// Also scan the yarn global store
	IncludeYarn bool

	Paths Paths
}
