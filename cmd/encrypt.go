package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	serrors "github.com/tovesk/envseal/internal/errors"
	"github.com/tovesk/envseal/internal/ui"
	"github.com/tovesk/envseal/internal/workflows"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [source] [output] [keyVar]",
	Short: "Encrypts a .env file into an encrypted container",
	Long: `Encrypts the plaintext dotenv file at [source] (default .env) into an
encrypted container at [output] (default .env.encrypted), using a key
derived from the passphrase in the [keyVar] environment variable
(default ENV_CRYPTO_KEY).`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting environment file...", verbose)
		defer cleanup()

		var opts workflows.EncryptOptions
		if len(args) > 0 {
			opts.SourcePath = args[0]
		}
		if len(args) > 1 {
			opts.OutputPath = args[1]
		}
		if len(args) > 2 {
			opts.KeyVar = args[2]
		}

		result, err := workflows.Encrypt(opts)
		if err != nil {
			Logger.Errorf("Encrypt failed: %v", err)
			spinner.FinalMSG = encryptFailureMessage(err)
			return err
		}

		Logger.Infof("Encrypt command completed successfully")
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Environment file encrypted successfully!\n" +
			"  " + ui.Path.Sprint(result.SourcePath) + " → " + ui.Path.Sprint(result.OutputPath) + "\n" +
			ui.Info.Sprint("→") + " You can now safely commit " + ui.Path.Sprint(result.OutputPath) + " to version control"
		return nil
	},
}

// encryptFailureMessage maps engine errors to user-facing final messages.
func encryptFailureMessage(err error) string {
	switch {
	case errors.Is(err, serrors.ErrKeyNotFound):
		return ui.Error.Sprint("✗") + " No passphrase found\n" +
			ui.Info.Sprint("→") + " Set the key variable first, e.g. " + ui.Code.Sprint("export ENV_CRYPTO_KEY=<passphrase>")
	case errors.Is(err, serrors.ErrInvalidPath):
		return ui.Error.Sprint("✗") + " Refusing to touch a path outside the working directory\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	default:
		return ui.Error.Sprint("✗") + " Failed to encrypt the environment file\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}
