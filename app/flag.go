package app

import "github.com/urfave/cli/v2"

var (
	mediaFlag = &cli.StringFlag{
		Name:    "media",
		Aliases: []string{"m"},
		Usage:   "Path to the media file this project reviews",
	}

	durationFlag = &cli.StringFlag{
		Name:    "duration",
		Aliases: []string{"d"},
		Usage:   "Media duration as SS, MM:SS, or H:MM:SS (e.g. '42:17')",
	}

	rateFlag = &cli.Float64Flag{
		Name:  "rate",
		Usage: "Playback speed multiplier for the review session (default: 1)",
	}

	seekStepFlag = &cli.Float64Flag{
		Name:  "seek-step",
		Usage: "How many seconds the arrow keys jump (default: 5)",
	}

	atFlag = &cli.StringFlag{
		Name:     "at",
		Usage:    "Timestamp as SS, MM:SS, or H:MM:SS",
		Required: true,
	}

	segmentIDFlag = &cli.IntFlag{
		Name:     "id",
		Usage:    "Segment id as printed by 'reclip show'",
		Required: true,
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path. Defaults to the media path with a _reclipped suffix",
	}

	dryRunFlag = &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Print the cut list and condensed duration without running ffmpeg",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output container format (default: mp3)",
	}

	ffmpegFlag = &cli.StringFlag{
		Name:  "ffmpeg",
		Usage: "Path to the ffmpeg binary",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the result as JSON",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	lightFlag = &cli.BoolFlag{
		Name:  "light",
		Usage: "Use colours suited to light terminal backgrounds",
	}
)
