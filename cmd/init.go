package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tovesk/envseal/internal/configs"
	"github.com/tovesk/envseal/internal/ui"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes a starter .envseal.toml to the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		if _, err := os.Stat(configs.SettingsFile); err == nil && !initForce {
			cmd.Println(ui.Error.Sprint("✗") + " " + ui.Path.Sprint(configs.SettingsFile) + " already exists\n" +
				ui.Info.Sprint("→") + " Re-run with " + ui.Code.Sprint("--force") + " to overwrite it")
			return nil
		}

		if err := configs.SaveSettings(configs.DefaultSettings()); err != nil {
			return Logger.ErrorfAndReturn("failed to write settings file: %v", err)
		}

		cmd.Println(ui.Success.Sprint("✓") + " Wrote " + ui.Path.Sprint(configs.SettingsFile) + "\n" +
			ui.Info.Sprint("→") + " Adjust " + ui.Code.Sprint("source") + ", " + ui.Code.Sprint("output") + " and " +
			ui.Code.Sprint("key_var") + " to taste")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing settings file")
}

// resetInitCommandState resets the init command flags for testing.
func resetInitCommandState() {
	initForce = false
}
