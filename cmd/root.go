package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soluna/temple-go/cmd/calculate"
	"github.com/soluna/temple-go/cmd/ephemeris"
	"github.com/soluna/temple-go/cmd/serve"
	"github.com/soluna/temple-go/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "temple",
		Short: "Temple-Go birth chart calculation service",
	}

	// Set up the global flags for the root command.
	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		calculate.Command(settings),
		serve.Command(settings),
		ephemeris.Command(settings),
	}

	rootCmd.AddCommand(subcommands...)

	return rootCmd
}

// setupFlags defines global flags and binds them to viper.
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Ephemeris.TablePath, "ephemeris-table", viper.GetString("ephemeris.tablepath"), "Path to the pre-computed ephemeris table CSV")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		cobra.CheckErr(err)
	}
}
