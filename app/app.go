// Package app wires the reclip command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/reclip-dev/reclip/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the reclip app instance.
func Get() *cli.App {
	reclipApp := &cli.App{
		Name: "reclip",
		Usage: `
		Reclip marks, while you review a media recording, which time ranges to
		keep. Toggling "keep" works like a tape recorder: re-marking a range
		overwrites whatever was previously recorded there, and everything
		outside the range is preserved. The kept ranges are spliced into an
		output file with ffmpeg.`,
		UsageText:            "[COMMAND] [OPTIONS] PROJECT",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List all saved projects",
				Action:    listAction,
				Flags:     []cli.Flag{jsonFlag},
				ArgsUsage: " ",
			},
			{
				Name:      "show",
				Usage:     "Print the kept/skipped timeline of a project",
				Action:    showAction,
				Flags:     []cli.Flag{jsonFlag},
				ArgsUsage: "PROJECT",
			},
			{
				Name:      "toggle",
				Usage:     "Flip a segment between kept and skipped",
				Action:    toggleAction,
				Flags:     []cli.Flag{segmentIDFlag},
				ArgsUsage: "PROJECT",
			},
			{
				Name:      "split",
				Usage:     "Split the segment containing a timestamp in two",
				Action:    splitAction,
				Flags:     []cli.Flag{atFlag},
				ArgsUsage: "PROJECT",
			},
			{
				Name:      "finalize",
				Usage:     "Cap a project's timeline at the true media duration",
				Action:    finalizeAction,
				Flags:     []cli.Flag{durationFlag},
				ArgsUsage: "PROJECT",
			},
			{
				Name:      "export",
				Usage:     "Splice the kept ranges of one or more projects into output files",
				Action:    exportAction,
				Flags:     []cli.Flag{outputFlag, dryRunFlag, formatFlag, ffmpegFlag},
				ArgsUsage: "PROJECT...",
			},
			{
				Name:      "delete",
				Usage:     "Permanently remove one or more projects",
				Action:    deleteAction,
				Flags:     []cli.Flag{yesFlag},
				ArgsUsage: "PROJECT...",
			},
		},
		Flags: []cli.Flag{
			mediaFlag,
			durationFlag,
			rateFlag,
			seekStepFlag,
			lightFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return reclipApp
}
