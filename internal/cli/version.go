package cli

import (
	"github.com/spf13/cobra"

	"github.com/jobdeck/flaggate/internal/version"
)

var versionCheck bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version, optionally checking for updates",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "check GitHub for a newer release")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	cmd.Println("flaggate", version.Version())

	if !versionCheck {
		return nil
	}

	latest, upToDate, err := version.CheckLatest(cmd.Context(), version.NewReleaseService())
	if err != nil {
		return err
	}

	if upToDate {
		cmd.Println("up to date")
	} else {
		cmd.Println("latest release:", latest)
	}
	return nil
}
