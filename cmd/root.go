package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	logger "github.com/tovesk/envseal/internal/logging"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "envseal",
	Short: "Envseal - Encrypt your .env files with a passphrase.",
	Long: `Envseal protects configuration secrets at rest. It encrypts a plaintext
.env file into a self-describing encrypted container, and decrypts that
container back into key-value pairs for application consumption.

The passphrase is read from an environment variable (ENV_CRYPTO_KEY by
default), never from the command line.

Usage:
  envseal encrypt [source] [output] [keyVar]
  envseal decrypt [source] [output] [keyVar]

Run 'envseal help <command>' for more details on a specific command.
`,
	// Unknown subcommands fall through to this Run and get the help text.
	// That is a non-fatal help path: the process still exits 0.
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("envseal", "", true).Print()
		fmt.Println()
		_ = cmd.Help()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing envseal with verbose=%t, debug=%t", verbose, debug)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(initCmd)
}

// Execute runs the root command, exiting non-zero on any command error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Helper functions for testing

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetInitCommandState()
}
