// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ahale/icalgo/ical"
	"github.com/ahale/icalgo/internal/config"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
	With().Timestamp().Logger()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error().Err(err).Msg("icalgo failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &config.Flags{}

	cmd := &cobra.Command{
		Use:          "icalgo",
		Short:        "Parse, validate, and enumerate RFC 5545 iCalendar data",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.ICalPath, "ical", "", "path to the .ics file (searched in ./ics, ./, then as given)")
	cmd.PersistentFlags().StringVar(&flags.DTStart, "dtstart", "", "enumeration window start, YYYYMMDD")
	cmd.PersistentFlags().StringVar(&flags.DTEnd, "dtend", "", "enumeration window end, YYYYMMDD")
	cmd.PersistentFlags().BoolVar(&flags.Conformance, "conformance", false, "escalate rule-violation diagnostics to fatal for validate")

	cmd.AddCommand(newEnumerateCmd(flags), newValidateCmd(flags))
	return cmd
}

func loadCalendar(path string, conformance bool) (*ical.Calendar, error) {
	resolved, err := config.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	var opts []ical.Option
	if conformance {
		opts = append(opts, ical.WithConformance())
	}
	return ical.LoadFile(resolved, opts...)
}

func newValidateCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report whether the calendar has zero conformance diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar(flags.ICalPath, flags.Conformance)
			if err != nil {
				return err
			}
			if cal.ValidateStrict() {
				logger.Info().Str("ical", flags.ICalPath).Msg("calendar is strictly conformant")
				return nil
			}
			for _, e := range cal.Diagnostics.Entries() {
				logger.Warn().Str("tag", e.Tag).Int("line", e.Line).Msg(e.Annotation)
			}
			os.Exit(1)
			return nil
		},
	}
}

func newEnumerateCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "enumerate",
		Short: "Print the occurrences of every event between --dtstart and --dtend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := loadCalendar(flags.ICalPath, flags.Conformance)
			if err != nil {
				return err
			}

			start, err := time.Parse("20060102", flags.DTStart)
			if err != nil {
				return err
			}
			end, err := time.Parse("20060102", flags.DTEnd)
			if err != nil {
				return err
			}
			// Window end is exclusive of the day after dtend, matching the
			// driver's inclusive "through end day" semantics.
			end = end.AddDate(0, 0, 1)

			occs, err := cal.Enumerate(start, end)
			if err != nil {
				return err
			}
			for _, o := range occs {
				logger.Info().
					Str("uid", o.UID).
					Str("summary", o.Summary).
					Time("start", o.Start.Time).
					Msg("occurrence")
			}
			return nil
		},
	}
}
