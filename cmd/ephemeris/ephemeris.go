// Package ephemeris implements the ephemeris table maintenance subcommands.
package ephemeris

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/soluna/temple-go/internal/conf"
	"github.com/soluna/temple-go/internal/ephemeris"
)

// Command creates the ephemeris command with its subcommands.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ephemeris",
		Short: "Ephemeris table maintenance",
	}
	cmd.AddCommand(generateCommand(settings))
	cmd.AddCommand(infoCommand(settings))
	return cmd
}

func generateCommand(settings *conf.Settings) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the daily longitude table from the analytic model",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse("2006-01-02", settings.Ephemeris.WindowStart)
			if err != nil {
				return fmt.Errorf("invalid window start %q: %w", settings.Ephemeris.WindowStart, err)
			}
			end, err := time.Parse("2006-01-02", settings.Ephemeris.WindowEnd)
			if err != nil {
				return fmt.Errorf("invalid window end %q: %w", settings.Ephemeris.WindowEnd, err)
			}

			table, err := ephemeris.GenerateTable(start, end)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()

			if err := table.WriteCSV(f); err != nil {
				return fmt.Errorf("writing table: %w", err)
			}
			fmt.Printf("wrote %d day rows to %s\n", table.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "ephemeris.csv", "Output CSV path")
	return cmd
}

func infoCommand(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the window of the configured ephemeris table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if settings.Ephemeris.TablePath == "" {
				return fmt.Errorf("no ephemeris table configured")
			}
			table, err := ephemeris.LoadTable(settings.Ephemeris.TablePath)
			if err != nil {
				return err
			}
			start, end := table.Window()
			fmt.Printf("table: %s\nrows: %d\nwindow: %s .. %s\n",
				settings.Ephemeris.TablePath, table.Len(),
				start.Format("2006-01-02"), end.Format("2006-01-02"))
			return nil
		},
	}
}
