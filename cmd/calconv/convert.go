// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"cloudeng.io/calendar"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type systemsFlags struct {
	CommonFlags
}

type convertFlags struct {
	CommonFlags
	Year       int    `subcmd:"year,1970,ISO year; zero and negative years are proleptic"`
	Month      int    `subcmd:"month,1,ISO month in the range 1-12"`
	Day        int    `subcmd:"day,1,ISO day of month"`
	Hour       int    `subcmd:"hour,0,hour in the range 0-23"`
	Minute     int    `subcmd:"minute,0,minute in the range 0-59"`
	Second     int    `subcmd:"second,0,second in the range 0-59"`
	Nanosecond int    `subcmd:"nanosecond,0,nanosecond in the range 0-999999999"`
	To         string `subcmd:"to,,comma separated calendar systems to convert to; all systems when empty"`
}

type systemInfo struct {
	System       string   `yaml:"system"`
	Eras         []string `yaml:"eras"`
	MonthsInYear string   `yaml:"months_in_year"`
}

type nativeReport struct {
	System       string `yaml:"system"`
	Year         int    `yaml:"year"`
	Month        int    `yaml:"month"`
	Day          int    `yaml:"day"`
	Era          string `yaml:"era"`
	EraYear      int    `yaml:"era_year"`
	Time         string `yaml:"time"`
	Weekday      string `yaml:"weekday"`
	DayOfYear    int    `yaml:"day_of_year"`
	MonthsInYear int    `yaml:"months_in_year"`
	DaysInMonth  int    `yaml:"days_in_month"`
	DaysInYear   int    `yaml:"days_in_year"`
	LeapYear     bool   `yaml:"leap_year"`
}

func systems(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*systemsFlags)
	infos := make([]systemInfo, 0, len(calendar.Systems()))
	for _, sys := range calendar.Systems() {
		months := "12"
		if sys == calendar.Hebrew {
			months = "12-13"
		} else if n := sys.MonthsInYear(1); n != 12 {
			months = fmt.Sprintf("%d", n)
		}
		infos = append(infos, systemInfo{
			System:       sys.String(),
			Eras:         sys.Eras(),
			MonthsInYear: months,
		})
	}
	if fv.YAML {
		out, err := yaml.Marshal(infos)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%-20s months: %-6s eras: %s\n", info.System, info.MonthsInYear, strings.Join(info.Eras, ", "))
	}
	return nil
}

func parseSystems(val string) ([]calendar.System, error) {
	if len(val) == 0 {
		return calendar.Systems(), nil
	}
	errs := &errors.M{}
	targets := make([]calendar.System, 0, len(calendar.Systems()))
	for _, name := range strings.Split(val, ",") {
		sys, err := calendar.ParseSystem(strings.TrimSpace(name))
		if err != nil {
			errs.Append(err)
			continue
		}
		targets = append(targets, sys)
	}
	return targets, errs.Err()
}

func convert(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*convertFlags)
	ctx = fv.withLogging(ctx)
	dt, err := calendar.NewDateTime(fv.Year, calendar.Month(fv.Month), fv.Day, fv.Hour, fv.Minute, fv.Second, fv.Nanosecond)
	if err != nil {
		return err
	}
	targets, err := parseSystems(fv.To)
	if err != nil {
		return err
	}
	reports := make([]nativeReport, 0, len(targets))
	for _, sys := range targets {
		sdt := dt.In(sys)
		era, eraYear := sdt.Date().Era()
		ctxlog.Logger(ctx).Debug("converted", "system", sys.String(), "native", sdt.String())
		reports = append(reports, nativeReport{
			System:       sys.String(),
			Year:         sdt.Year(),
			Month:        sdt.Month(),
			Day:          sdt.Day(),
			Era:          era,
			EraYear:      eraYear,
			Time:         sdt.TimeOfDay().String(),
			Weekday:      sdt.Date().Weekday().String(),
			DayOfYear:    sdt.Date().DayOfYear(),
			MonthsInYear: sdt.Date().MonthsInYear(),
			DaysInMonth:  sdt.Date().DaysInMonth(),
			DaysInYear:   sdt.Date().DaysInYear(),
			LeapYear:     sdt.Date().InLeapYear(),
		})
	}
	if fv.YAML {
		out, err := yaml.Marshal(reports)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}
	fmt.Printf("%s\n", dt)
	for _, r := range reports {
		fmt.Printf("%-20s %04d-%02d-%02d (%s %d) %s, day %d of %d\n",
			r.System, r.Year, r.Month, r.Day, r.Era, r.EraYear, r.Weekday, r.DayOfYear, r.DaysInYear)
	}
	return nil
}
