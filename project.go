package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/vyPal/Ristretto/lib/project"
	"github.com/vyPal/Ristretto/util"
)

func init() {
	commands = append(commands, &cli.Command{
		Name:     "init",
		Usage:    "Write a default " + project.FileName + " to the current directory",
		Category: "project",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "The name of the project",
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite an existing config without asking",
			},
		},
		Action: initProject,
	})
}

func initProject(c *cli.Context) error {
	name := c.String("name")
	if name == "" {
		name = util.PromptString("Project name", "NewProject")
	}

	var conf project.Config
	conf.CreateDefault(name)
	conf.Requires = "^" + Version

	written, err := conf.Save(project.FileName, c.Bool("force"))
	if err != nil {
		return cli.Exit(color.RedString("Error writing %s: %s", project.FileName, err), 1)
	}
	if !written {
		fmt.Fprintln(c.App.Writer, color.YellowString("Kept existing %s", project.FileName))
		return nil
	}

	fmt.Fprintln(c.App.Writer, color.GreenString("Wrote %s", project.FileName))
	return nil
}
