package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/pd-org/go-event/demo"
	"github.com/pd-org/go-event/demo/config"
)

// These values are set at compile-time.
var (
	Version  = ""
	Revision = ""
)

// Run runs the commandline application.
func Run() error {
	return newApp().Run(os.Args)
}

// newApp returns a new commandline application.
func newApp() *cli.App {
	cli.VersionPrinter = func(cCtx *cli.Context) {
		fmt.Fprintf(cCtx.App.Writer, "%s (%s)\n", Version, Revision)
	}

	return &cli.App{
		Name:                   "go-event",
		Usage:                  "Typed event broadcaster.",
		Version:                Version + " (" + Revision + ")",
		Description:            "A demonstration of the typed event broadcaster.",
		Copyright:              "(c) pd-org.",
		Compiled:               time.Now(),
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Suggest:                true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"n"},
				EnvVars: []string{"GO_EVENT_INPUT"},
				Value:   "Hello",
				Usage:   "Specify the string to reverse and broadcast.",
			},
			&cli.IntFlag{
				Name:    "repeat",
				Aliases: []string{"r"},
				EnvVars: []string{"GO_EVENT_REPEAT"},
				Value:   1,
				Usage:   "Specify how many times to fire the event.",
			},
			&cli.BoolFlag{
				Name:    "title-case",
				Aliases: []string{"t"},
				EnvVars: []string{"GO_EVENT_TITLE_CASE"},
				Usage:   "Title-case every reversed result before firing.",
			},
			&cli.BoolFlag{
				Name:    "no-warning",
				Aliases: []string{"w"},
				EnvVars: []string{"GO_EVENT_NO_WARNING"},
				Usage:   "Do not display warnings when the application has initialized.",
			},
			&cli.IntFlag{
				Name:    "bench",
				Aliases: []string{"b"},
				Usage:   "Fire the event the given number of times and report timings.",
				Action: func(_ *cli.Context, fires int) error {
					return runBench(fires)
				},
			},
			&cli.BoolFlag{
				Name:    "generate",
				Aliases: []string{"g"},
				Usage:   "Generate configuration.",
				Action: func(cliCtx *cli.Context, _ bool) error {
					cliCtx.Command.Name = "global"

					k, cfg := koanf.New("."), config.NewConfig()
					if err := cfg.Load(k, cliCtx); err != nil {
						return err
					}

					return cfg.GenerateAndSave(k)
				},
			},
		},
		Action: func(cliCtx *cli.Context) error {
			if cliCtx.Bool("generate") || cliCtx.Int("bench") > 0 {
				return nil
			}

			// required for koanf to merge all global flags under the root namespace.
			cliCtx.Command.Name = "global"

			k, cfg := koanf.New("."), config.NewConfig()
			if err := cfg.Load(k, cliCtx); err != nil {
				return err
			}
			if err := cfg.ValidateValues(); err != nil {
				return err
			}

			if !cfg.Values.NoWarning {
				printWarn("Handlers run synchronously inside fire; a blocking handler stalls dispatch.")
			}

			return runDemo(cfg)
		},
		ExitErrHandler: func(_ *cli.Context, err error) {
			if err == nil {
				return
			}

			printError(err)
		},
	}
}

// runDemo wires a consumer and a bus relay to a widget, fires the
// configured number of times, and prints everything each side handled.
func runDemo(cfg *config.Config) error {
	widget := demo.NewWidget(cfg.Values.TitleCase)
	consumer := demo.NewConsumer(widget)

	sub := relayReversed(widget)

	var busLines []string
	var g errgroup.Group
	g.Go(func() error {
		busLines = drainReversed(sub, cfg.Values.Repeat+1)
		return nil
	})

	for i := 0; i < cfg.Values.Repeat; i++ {
		widget.ReverseString(cfg.Values.Input)
	}

	// One more fire with the secondary handler detached.
	consumer.DetachSecondary()
	widget.ReverseString(cfg.Values.Input)

	if err := g.Wait(); err != nil {
		return err
	}
	sub.Unsubscribe()

	printResults("consumer", consumer.Lines)
	printResults("bus", busLines)

	return nil
}

// runBench fires an event the given number of times behind a progress bar.
func runBench(fires int) error {
	widget := demo.NewWidget(false)
	consumer := demo.NewConsumer(widget)

	bar := newBenchBar(fires)

	start := time.Now()
	for i := 0; i < fires; i++ {
		widget.ReverseString("benchmark")

		if err := bar.Add(1); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	printResults("bench", []string{
		fmt.Sprintf("%d fires in %s", fires, elapsed),
		fmt.Sprintf("%d handler invocations", len(consumer.Lines)),
	})

	return nil
}
