package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"rpsls.hcl" type:"path" help:"HCL configuration file"`
	LogLevel string           `help:"Override the configured log level (debug, info, warn, error)"`
	LogFile  string           `type:"path" help:"Write logs to this file instead of stderr"`
	NoColor  bool             `help:"Disable colored output"`

	Play     PlayCmd     `cmd:"" default:"withargs" help:"Play against a computer opponent"`
	Simulate SimulateCmd `cmd:"" help:"Pit two computer opponents against each other"`
	Rules    RulesCmd    `cmd:"" help:"List which move beats which"`
	Roster   RosterCmd   `cmd:"" help:"List the configured computer opponents"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rpsls"),
		kong.Description("Rock, Paper, Scissors, Lizard, Spock"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
