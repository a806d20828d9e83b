package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	serrors "github.com/tovesk/envseal/internal/errors"
	"github.com/tovesk/envseal/internal/ui"
	"github.com/tovesk/envseal/internal/workflows"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [source] [output] [keyVar]",
	Short: "Decrypts an encrypted container back into key-value pairs",
	Long: `Decrypts the encrypted container at [source] (default .env.encrypted)
using the passphrase in the [keyVar] environment variable (default
ENV_CRYPTO_KEY). When [output] is given, the decrypted variables are
re-serialized as key=value lines and written there.`,
	Args: cobra.MaximumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		spinner, cleanup := startSpinner("Decrypting environment file...", verbose)
		defer cleanup()

		var opts workflows.DecryptOptions
		if len(args) > 0 {
			opts.SourcePath = args[0]
		}
		if len(args) > 1 {
			opts.OutputPath = args[1]
		}
		if len(args) > 2 {
			opts.KeyVar = args[2]
		}

		result, err := workflows.Decrypt(opts)
		if err != nil {
			Logger.Errorf("Decrypt failed: %v", err)
			spinner.FinalMSG = decryptFailureMessage(err)
			return err
		}

		Logger.Infof("Decrypt command completed successfully, %d variables", len(result.Vars))
		finalMessage := ui.Success.Sprint("✓") + fmt.Sprintf(" Decrypted %d variables from ", len(result.Vars)) +
			ui.Path.Sprint(result.SourcePath)
		if result.OutputPath != "" {
			finalMessage += "\n" + ui.Info.Sprint("→") + " Written to " + ui.Path.Sprint(result.OutputPath)
		}
		spinner.FinalMSG = finalMessage
		return nil
	},
}

// decryptFailureMessage maps engine errors to user-facing final messages.
func decryptFailureMessage(err error) string {
	switch {
	case errors.Is(err, serrors.ErrKeyNotFound):
		return ui.Error.Sprint("✗") + " No passphrase found\n" +
			ui.Info.Sprint("→") + " Set the key variable first, e.g. " + ui.Code.Sprint("export ENV_CRYPTO_KEY=<passphrase>")
	case errors.Is(err, serrors.ErrDecryptionFailed):
		return ui.Error.Sprint("✗") + " Decryption failed\n" +
			ui.Info.Sprint("→") + " Wrong passphrase, or the container has been modified"
	case errors.Is(err, serrors.ErrMalformedContainer), errors.Is(err, serrors.ErrInvalidFormat):
		return ui.Error.Sprint("✗") + " The file is not a valid encrypted container\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, serrors.ErrInvalidPath):
		return ui.Error.Sprint("✗") + " Refusing to touch a path outside the working directory\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	default:
		return ui.Error.Sprint("✗") + " Failed to decrypt the environment file\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	}
}
