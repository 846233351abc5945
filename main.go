package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/vyPal/Ristretto/lib/project"
	"github.com/vyPal/Ristretto/lib/repl"
)

const Version = "0.1.0"

var commands []*cli.Command

func init() {
	commands = append(commands, &cli.Command{
		Name:  "repl",
		Usage: "Start the interactive shell",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "parse",
				Aliases: []string{"p"},
				Usage:   "Parse each line instead of printing its tokens",
			},
			&cli.StringFlag{
				Name:  "prompt",
				Usage: "Override the prompt from the config file",
			},
		},
		Action: startRepl,
	})
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "ristretto",
		Usage:                  "Lexer and parser for the Ristretto language",
		Version:                Version,
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the config file (default: ./" + project.FileName + ")",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
		Commands: commands,
		Action:   startRepl,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the config named by --config, or ristretto.yaml in the
// working directory when there is one.
func loadConfig(c *cli.Context) (project.Config, error) {
	var (
		conf project.Config
		err  error
	)
	if path := c.String("config"); path != "" {
		conf, err = project.LoadFile(path)
	} else {
		conf, err = project.Load(".")
	}
	if err != nil {
		return project.Config{}, cli.Exit(color.RedString("Error loading config: %s", err), 1)
	}
	if err := conf.Validate(Version); err != nil {
		return project.Config{}, cli.Exit(color.RedString("Invalid config: %s", err), 1)
	}
	if conf.Color != nil && !*conf.Color {
		color.NoColor = true
	}
	return conf, nil
}

func startRepl(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts := repl.Options{Prompt: conf.Repl.Prompt, Mode: conf.Repl.Mode}
	if c.IsSet("prompt") {
		opts.Prompt = c.String("prompt")
	}
	if c.Bool("parse") {
		opts.Mode = repl.ModeParse
	}

	return repl.Start(c.App.Reader, c.App.Writer, opts)
}
