package main

import "flag"

type cliArgs struct {
	cfgPath     string
	echoDelay   string
	botInterval string
	noBot       bool
	version     bool
}

func newFlagSet(name string) (*flag.FlagSet, *cliArgs) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	args := &cliArgs{}

	fs.StringVar(&args.cfgPath, "config", "", "Path to config file (default ~/.banter/config.toml)")
	fs.StringVar(&args.echoDelay, "echo-delay", "", "Delay before the bot acknowledges a message (e.g. 1s)")
	fs.StringVar(&args.botInterval, "bot-interval", "", "Interval between random bot messages (e.g. 5s)")
	fs.BoolVar(&args.noBot, "no-bot", false, "Disable the bot entirely (no echoes, no periodic messages)")
	fs.BoolVar(&args.version, "version", false, "Print version and exit")

	return fs, args
}
