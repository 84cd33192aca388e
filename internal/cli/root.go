package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd создаёт корневую команду run-data-managers.
func NewRootCmd(version string) *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:           "run-data-managers",
		Short:         "Provision reference data on a Galaxy instance",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.GalaxyURL, "galaxy", "g", defaultGalaxyURL, "Target Galaxy instance URL")
	flags.StringVarP(&opts.APIKey, "api-key", "a", "", "Galaxy admin API key")
	flags.StringVarP(&opts.User, "user", "u", "", "Galaxy user email (used with --password when no API key is given)")
	flags.StringVarP(&opts.Password, "password", "p", "", "Password for the Galaxy user")
	flags.StringVar(&opts.ConfigPath, "config", "", "Path to the YAML file with data managers to run")
	flags.BoolVar(&opts.Overwrite, "overwrite", false, "Run jobs even when the data is already present")
	flags.BoolVar(&opts.IgnoreErrors, "ignore-errors", false, "Continue after failed jobs instead of aborting")
	flags.BoolVar(&opts.JSONOutput, "json", false, "Output the run summary in JSON format")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&opts.MetricsAddr, "metrics-addr", "", "Address for /metrics and /healthz (disabled when empty)")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newWatchCmd(opts),
	)

	return rootCmd
}
