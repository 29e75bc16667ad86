// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command calconv converts ISO dates and times between the supported
// calendar systems and reports derived fields such as week numbers and the
// minutes-since-epoch encoding.
package main

import (
	"context"
	"log/slog"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

var cmdSet *subcmd.CommandSet

func init() {
	systemsFlagSet := subcmd.NewFlagSet()
	systemsFlagSet.MustRegisterFlagStruct(&systemsFlags{}, nil, nil)
	convertFlagSet := subcmd.NewFlagSet()
	convertFlagSet.MustRegisterFlagStruct(&convertFlags{}, nil, nil)
	weekFlagSet := subcmd.NewFlagSet()
	weekFlagSet.MustRegisterFlagStruct(&weekFlags{}, nil, nil)
	minutesFlagSet := subcmd.NewFlagSet()
	minutesFlagSet.MustRegisterFlagStruct(&minutesFlags{}, nil, nil)
	almanacFlagSet := subcmd.NewFlagSet()
	almanacFlagSet.MustRegisterFlagStruct(&almanacFlags{}, nil, nil)

	systemsCmd := subcmd.NewCommand("systems", systemsFlagSet, systems, subcmd.WithoutArguments())
	systemsCmd.Document("list the supported calendar systems")

	convertCmd := subcmd.NewCommand("convert", convertFlagSet, convert, subcmd.WithoutArguments())
	convertCmd.Document("convert an ISO date and time to other calendar systems")

	weekCmd := subcmd.NewCommand("week", weekFlagSet, week, subcmd.WithoutArguments())
	weekCmd.Document("report week of year and week of month for an ISO date")

	minutesCmd := subcmd.NewCommand("minutes", minutesFlagSet, minutes, subcmd.WithoutArguments())
	minutesCmd.Document("encode or decode the minutes since 1970-01-01T00:00 scalar")

	almanacCmd := subcmd.NewCommand("almanac", almanacFlagSet, runAlmanac, subcmd.WithoutArguments())
	almanacCmd.Document("list calendar boundaries and observances over a date range")

	cmdSet = subcmd.NewCommandSet(almanacCmd, convertCmd, minutesCmd, systemsCmd, weekCmd)
}

// CommonFlags are shared by every calconv command.
type CommonFlags struct {
	Verbose bool `subcmd:"verbose,false,log progress as JSON to stderr"`
	YAML    bool `subcmd:"yaml,false,emit results as YAML rather than text"`
}

func (c CommonFlags) withLogging(ctx context.Context) context.Context {
	if !c.Verbose {
		return ctx
	}
	return ctxlog.NewJSONLogger(ctx, os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
