package main

import (
	"github.com/alecthomas/kong"

	"github.com/open-source-firmware/hcimon/pkg/cmdutil"
)

const (
	programName = "hcimon"
	programDesc = "Bluetooth HCI monitor-channel capture dissector"
)

func main() {
	ctx := kong.Parse(&cli,
		kong.Name(programName),
		kong.Description(programDesc),
		kong.UsageOnError(),
		kong.NamedMapper("accessiblefile", cmdutil.AccessibleFileMapper()),
		kong.Resolvers(cmdutil.ResolvePassword(false)),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	err := ctx.Run(&context{})
	ctx.FatalIfErrorf(err)
}
