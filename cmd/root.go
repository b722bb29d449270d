package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the convar application.
var rootCmd = &cobra.Command{
	Use:   "convar",
	Short: "Runtime configuration console",
	Long: `convar exposes an application's configuration values and actions as
a hierarchical console namespace: read, set and reset typed values or
invoke actions from single-line text commands.

The bundled demo configuration lets you explore the interpreter; real
applications embed the pkg/cvar library instead.`,
	// SilenceUsage prevents cobra from printing the usage message on
	// errors already handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. Called from main
// to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "convar version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newConsoleCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newVersionCmd())
}
