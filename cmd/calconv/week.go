// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/calendar"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

type weekFlags struct {
	CommonFlags
	Year     int    `subcmd:"year,1970,ISO year"`
	Month    int    `subcmd:"month,1,ISO month in the range 1-12"`
	Day      int    `subcmd:"day,1,ISO day of month"`
	FirstDay string `subcmd:"first-day,monday,weekday weeks begin on"`
	MinDays  int    `subcmd:"min-days,4,minimal days in the first week of the year; 1-7"`
	System   string `subcmd:"system,iso,calendar system whose year boundaries number the weeks"`
}

type weekReport struct {
	Date        string `yaml:"date"`
	System      string `yaml:"system"`
	Weekday     string `yaml:"weekday"`
	WeekOfMonth int    `yaml:"week_of_month"`
	WeekOfYear  int    `yaml:"week_of_year"`
	WeekUnit    string `yaml:"week_unit"`
}

func week(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*weekFlags)
	ctx = fv.withLogging(ctx)
	date, err := calendar.NewDate(fv.Year, calendar.Month(fv.Month), fv.Day)
	if err != nil {
		return err
	}
	first, err := calendar.ParseWeekday(fv.FirstDay)
	if err != nil {
		return err
	}
	wc, err := calendar.NewWeekCalculator(first, fv.MinDays)
	if err != nil {
		return err
	}
	sys, err := calendar.ParseSystem(fv.System)
	if err != nil {
		return err
	}
	native := date.In(sys)
	wy, err := native.WeekOfYear(wc)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("week", "date", date.String(), "native", native.String())
	report := weekReport{
		Date:        date.String(),
		System:      sys.String(),
		Weekday:     date.Weekday().String(),
		WeekOfMonth: native.WeekOfMonth(first),
		WeekOfYear:  wy.Week,
		WeekUnit:    wy.Unit.String(),
	}
	if fv.YAML {
		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}
	fmt.Printf("%s (%s): week %d of month, week %d of year (%s)\n",
		report.Date, report.Weekday, report.WeekOfMonth, report.WeekOfYear, report.WeekUnit)
	return nil
}

type minutesFlags struct {
	CommonFlags
	Minutes int64 `subcmd:"minutes,0,minutes since 1970-01-01T00:00 to decode"`
	Year    int   `subcmd:"year,0,encode this ISO date and time instead of decoding --minutes"`
	Month   int   `subcmd:"month,1,ISO month in the range 1-12"`
	Day     int   `subcmd:"day,1,ISO day of month"`
	Hour    int   `subcmd:"hour,0,hour in the range 0-23"`
	Minute  int   `subcmd:"minute,0,minute in the range 0-59"`
}

func minutes(_ context.Context, values interface{}, _ []string) error {
	fv := values.(*minutesFlags)
	if fv.Year != 0 {
		dt, err := calendar.NewDateTime(fv.Year, calendar.Month(fv.Month), fv.Day, fv.Hour, fv.Minute, 0, 0)
		if err != nil {
			return err
		}
		fmt.Printf("%s = %d minutes\n", dt, dt.MinutesSinceUnixEpoch())
		return nil
	}
	dt := calendar.DateTimeFromMinutes(fv.Minutes)
	fmt.Printf("%d minutes = %s\n", fv.Minutes, dt)
	return nil
}
