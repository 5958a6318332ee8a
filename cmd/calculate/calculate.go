// Package calculate implements the one-shot chart calculation subcommand.
package calculate

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/soluna/temple-go/internal/chart"
	"github.com/soluna/temple-go/internal/conf"
	"github.com/soluna/temple-go/internal/ephemeris"
	"github.com/soluna/temple-go/internal/logging"
)

// Command creates the calculate command.
func Command(settings *conf.Settings) *cobra.Command {
	var (
		date     string
		clock    string
		timezone string
		lat      float64
		lng      float64
		city     string
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate a chart from birth data and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(settings, date, clock, timezone, lat, lng, city)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&clock, "time", "12:00", "Birth time (HH:MM, 24h)")
	cmd.Flags().StringVar(&timezone, "timezone", "UTC", "IANA timezone of the birth place")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Birth latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Birth longitude")
	cmd.Flags().StringVar(&city, "city", "", "Birth city label")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func runCalculate(settings *conf.Settings, date, clock, timezone string, lat, lng float64, city string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", clock, err)
	}

	data := &chart.BirthData{
		Year:      day.Year(),
		Month:     day.Month(),
		Day:       day.Day(),
		Hour:      hm.Hour(),
		Minute:    hm.Minute(),
		Timezone:  timezone,
		Latitude:  lat,
		Longitude: lng,
		City:      city,
	}
	if err := data.Validate(); err != nil {
		return err
	}

	var table *ephemeris.Table
	if settings.Ephemeris.TablePath != "" {
		table, err = ephemeris.LoadTable(settings.Ephemeris.TablePath)
		if err != nil {
			return fmt.Errorf("loading ephemeris table: %w", err)
		}
	}

	svc := chart.NewService(ephemeris.NewProvider(table, logging.ForService("ephemeris")), logging.ForService("chart"))
	result, err := svc.Calculate(data)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
