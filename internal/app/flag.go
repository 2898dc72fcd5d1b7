package app

import "github.com/urfave/cli/v2"

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "YAML configuration file",
	EnvVars: []string{"TRANSCRIBER_CONFIG"},
}

var debugFlag = &cli.BoolFlag{
	Name:  "debug",
	Usage: "Enable debug log",
	Value: false,
}

var logFileFlag = &cli.StringFlag{
	Name:  "log-file",
	Usage: "Append logs to this file instead of stderr",
}

//
// Transcription flags
//

var sessionFlag = &cli.StringFlag{
	Name:    "session",
	Aliases: []string{"s"},
	Usage:   "Session name used for saved files",
}

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Append final results to this file",
}

var progressFlag = &cli.BoolFlag{
	Name:  "progress",
	Usage: "Show a progress bar",
	Value: false,
}

var saveFlag = &cli.BoolFlag{
	Name:  "save",
	Usage: "Save the transcript when capture stops",
	Value: false,
}

//
// History flags
//

var limitFlag = &cli.IntFlag{
	Name:    "limit",
	Aliases: []string{"n"},
	Usage:   "Number of entries to list",
	Value:   20,
}
