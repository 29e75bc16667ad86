// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/calendar"
	"cloudeng.io/calendar/almanac"
	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type almanacFlags struct {
	CommonFlags
	Config    string `subcmd:"config,,YAML almanac configuration file; overrides the date and system flags"`
	FromYear  int    `subcmd:"from-year,1970,ISO year the range starts in"`
	FromMonth int    `subcmd:"from-month,1,ISO month the range starts in"`
	FromDay   int    `subcmd:"from-day,1,ISO day the range starts on"`
	ToYear    int    `subcmd:"to-year,1970,ISO year the range ends in"`
	ToMonth   int    `subcmd:"to-month,12,ISO month the range ends in"`
	ToDay     int    `subcmd:"to-day,31,ISO day the range ends on"`
	Systems   string `subcmd:"systems,iso,comma separated calendar systems to report boundaries for"`
}

// almanacConfig is the YAML form of an almanac query. All dates are ISO
// with numeric fields.
type almanacConfig struct {
	From        dateConfig         `yaml:"from"`
	To          dateConfig         `yaml:"to"`
	Systems     []string           `yaml:"systems"`
	Observances []observanceConfig `yaml:"observances"`
}

type dateConfig struct {
	Year  int `yaml:"year"`
	Month int `yaml:"month"`
	Day   int `yaml:"day"`
}

func (dc dateConfig) date() (calendar.Date, error) {
	return calendar.NewDate(dc.Year, calendar.Month(dc.Month), dc.Day)
}

type observanceConfig struct {
	Name  string `yaml:"name"`
	Year  int    `yaml:"year"`
	Month int    `yaml:"month"`
	Day   int    `yaml:"day"`
}

type eventReport struct {
	Date   string `yaml:"date"`
	Kind   string `yaml:"kind"`
	Source string `yaml:"source"`
	Native string `yaml:"native,omitempty"`
}

func (fv *almanacFlags) config() (almanacConfig, error) {
	cfg := almanacConfig{}
	if len(fv.Config) > 0 {
		err := cmdutil.ParseYAMLConfigFile(fv.Config, &cfg)
		return cfg, err
	}
	cfg.From = dateConfig{Year: fv.FromYear, Month: fv.FromMonth, Day: fv.FromDay}
	cfg.To = dateConfig{Year: fv.ToYear, Month: fv.ToMonth, Day: fv.ToDay}
	if systems, err := parseSystems(fv.Systems); err == nil {
		for _, sys := range systems {
			cfg.Systems = append(cfg.Systems, sys.String())
		}
	} else {
		return cfg, err
	}
	return cfg, nil
}

func almanacReports(ctx context.Context, cfg almanacConfig) ([]eventReport, error) {
	from, err := cfg.From.date()
	if err != nil {
		return nil, err
	}
	to, err := cfg.To.date()
	if err != nil {
		return nil, err
	}
	dr, err := calendar.NewDateRange(from, to)
	if err != nil {
		return nil, err
	}
	sources := make([]almanac.Source, 0, len(cfg.Systems)+len(cfg.Observances))
	for _, name := range cfg.Systems {
		sys, err := calendar.ParseSystem(name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, almanac.SystemEvents(sys))
	}
	for _, obs := range cfg.Observances {
		date, err := calendar.NewDate(obs.Year, calendar.Month(obs.Month), obs.Day)
		if err != nil {
			return nil, fmt.Errorf("observance %q: %w", obs.Name, err)
		}
		sources = append(sources, almanac.Dates(obs.Name, almanac.Observance, date))
	}
	reports := []eventReport{}
	for ev := range almanac.Between(dr, sources...) {
		report := eventReport{
			Date:   ev.When.String(),
			Kind:   ev.Kind.String(),
			Source: ev.Source,
		}
		if ev.Kind != almanac.Observance {
			report.Native = ev.Native.String()
		}
		reports = append(reports, report)
	}
	ctxlog.Logger(ctx).Debug("almanac", "range", dr.String(), "events", len(reports))
	return reports, nil
}

func runAlmanac(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*almanacFlags)
	ctx = fv.withLogging(ctx)
	cfg, err := fv.config()
	if err != nil {
		return err
	}
	reports, err := almanacReports(ctx, cfg)
	if err != nil {
		return err
	}
	if fv.YAML {
		out, err := yaml.Marshal(reports)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}
	for _, r := range reports {
		if len(r.Native) > 0 {
			fmt.Printf("%s %-12s %-20s %s\n", r.Date, r.Kind, r.Source, r.Native)
		} else {
			fmt.Printf("%s %-12s %s\n", r.Date, r.Kind, r.Source)
		}
	}
	return nil
}
