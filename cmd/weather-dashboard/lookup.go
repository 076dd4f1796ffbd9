package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-dashboard/internal/recent"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

func newCurrentCmd() *cobra.Command {
	var (
		lat, lon float64
		city     string
		unitFlag string
	)

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Print the weather for coordinates or a city",
		RunE: func(cmd *cobra.Command, _ []string) error {
			unit, err := weather.ParseUnit(unitFlag)
			if err != nil {
				return err
			}
			hasCoords := cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon")
			if hasCoords == (city != "") {
				return errors.New("pass either --city or both --lat and --lon")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			var snap weather.Snapshot
			if city != "" {
				snap, err = a.service.WeatherByCity(cmd.Context(), city)
			} else {
				snap, err = a.service.WeatherByCoords(cmd.Context(), lat, lon)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", weather.UserMessage(err), err)
			}

			printReport(cmd.OutOrStdout(), weather.BuildReport(snap, unit))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in decimal degrees")
	cmd.Flags().StringVar(&city, "city", "", "city name to look up")
	cmd.Flags().StringVar(&unitFlag, "unit", "celsius", "temperature unit (celsius|fahrenheit)")
	cmd.MarkFlagsRequiredTogether("lat", "lon")
	return cmd
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "List cities matching a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			results, err := a.service.SearchCities(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("%s: %w", weather.UserMessage(err), err)
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
}

func newRecentCmd() *cobra.Command {
	var clearAll bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show (or clear) recently viewed locations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if clearAll {
				return a.service.ClearRecent(cmd.Context())
			}
			list, err := a.service.RecentSearches(cmd.Context())
			if err != nil {
				return err
			}
			printRecent(cmd.OutOrStdout(), list)
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearAll, "clear", false, "forget all recent searches")
	return cmd
}

func printReport(w io.Writer, r weather.Report) {
	loc := r.Weather.Location
	cur := r.Weather.Current
	sym := r.Display.Symbol

	fmt.Fprintf(w, "%s, %s (%.4f, %.4f)\n", loc.Name, loc.Country, loc.Lat, loc.Lon)
	fmt.Fprintf(w, "%d%s, feels like %d%s, %s\n", r.Display.Temperature, sym, r.Display.FeelsLike, sym, cur.Description)
	fmt.Fprintf(w, "humidity %.0f%%  wind %.1f km/h  visibility %.1f km  UV %.1f\n",
		cur.Humidity, cur.WindSpeed, r.Display.VisibilityKm, cur.UVIndex)
	fmt.Fprintf(w, "danger level %d (%s)\n\n", r.Danger.Level, r.Danger.Rating)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tMIN\tMAX\tRAIN\tSKY")
	for i, d := range r.Display.Daily {
		day := r.Weather.Daily[i]
		fmt.Fprintf(tw, "%s\t%d%s\t%d%s\t%.0f%%\t%s\n",
			d.Date.Format("Mon 02 Jan"), d.Min, sym, d.Max, sym, day.PrecipProbability*100, day.Sky.Description)
	}
	tw.Flush()
}

func printResults(w io.Writer, results []weather.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "no matches")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tREGION\tCOUNTRY\tLAT\tLON")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.4f\t%.4f\n", r.Name, r.Region, r.Country, r.Lat, r.Lon)
	}
	tw.Flush()
}

func printRecent(w io.Writer, list []recent.Search) {
	if len(list) == 0 {
		fmt.Fprintln(w, "no recent searches")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCOUNTRY\tLAST SEARCHED\tWEATHER")
	for _, s := range list {
		summary := "-"
		if s.QuickWeather != nil {
			summary = fmt.Sprintf("%.0f°C %s", s.QuickWeather.Temperature, s.QuickWeather.Description)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Country, s.LastSearched.Local().Format("2006-01-02 15:04"), summary)
	}
	tw.Flush()
}
