package cli

import (
	"github.com/ralt/pkpeek/internal/config"
	"github.com/ralt/pkpeek/internal/peek"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Version is reported by --version
var Version = "0.1.0"

// Options swaps out the environment the command runs against
type Options struct {
	// Fs is the filesystem to scan; nil means the OS filesystem
	Fs afero.Fs

	// Env controls how package manager roots are resolved
	Env config.LoadOptions

	// Node detects the current Node version for --current; nil runs `node --version`
	Node peek.NodeVersionDetector
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithOptions(Options{})
}

// NewRootCmdWithOptions creates the root command against a custom environment
func NewRootCmdWithOptions(opts Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkpeek [package-name]",
		Short: "Know your globally installed node packages",
		Long: `pkpeek lists the Node.js packages installed globally on this machine.

Supported sources:
  - nvm  (every Node version under $NVM_DIR, default ~/.nvm)
  - pnpm (global store under $PNPM_HOME, default ~/.local/share/pnpm)
  - yarn (global store under $YARN_HOME, default ~/.config/yarn; with --yarn)

An optional package-name argument keeps only packages whose name contains it.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			logrus.SetOutput(cmd.ErrOrStderr())
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	addPeekFlags(rootCmd, opts)

	return rootCmd
}
