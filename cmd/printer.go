package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/schollz/progressbar/v3"
)

// printWarn prints a warning to the screen.
func printWarn(message string) {
	message = "[-] " + message

	color.New(color.FgYellow, color.Bold).Println(message)
}

// printError prints an error to the screen.
func printError(err error) {
	message := "[!] " + err.Error()

	color.New(color.FgRed, color.Bold).Println(message)
}

// printResults prints a labeled block of result lines, aligning the
// handler names on their trailing colon.
func printResults(label string, lines []string) {
	color.New(color.FgCyan, color.Bold).Printf("%s:\n", label)

	var width int
	for _, line := range lines {
		name, _, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		if w := runewidth.StringWidth(name); w > width {
			width = w
		}
	}

	for _, line := range lines {
		name, rest, ok := strings.Cut(line, ":")
		if !ok {
			color.New(color.FgWhite).Println("  " + line)
			continue
		}

		padding := strings.Repeat(" ", width-runewidth.StringWidth(name))
		color.New(color.FgWhite).Println("  " + name + padding + " :" + rest)
	}
}

// newBenchBar returns a progress bar sized for the given number of fires.
func newBenchBar(fires int) *progressbar.ProgressBar {
	return progressbar.NewOptions(fires,
		progressbar.OptionSetDescription("Firing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionThrottle(200*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
