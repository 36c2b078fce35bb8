package command

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/sokoverse/level-predictor/app/artifact"
	"github.com/sokoverse/level-predictor/command/config"

	"gopkg.in/alecthomas/kingpin.v2"
)

type inspectCommand struct {
	envFile string
}

func (c *inspectCommand) run(*kingpin.ParseContext) error {
	env, err := config.Load(c.envFile)
	if err != nil {
		return err
	}
	setupLogger(&env)

	src, err := config.ArtifactSource(&env)
	if err != nil {
		return err
	}
	b, err := src.Load(nocontext)
	if err != nil {
		return err
	}
	return describe(os.Stdout, b)
}

// describe writes the kind and shape of each artifact in the bundle.
func describe(w io.Writer, b *artifact.Bundle) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ARTIFACT\tKIND\tINPUTS\tOUTPUTS")
	fmt.Fprintf(tw, "scaler\t%s\t%d\t%d\n", b.Scaler.Kind(), b.Scaler.Dim(), b.Scaler.Dim())
	fmt.Fprintf(tw, "model\t%s\t%d\t%d\n", b.Model.Kind(), b.Model.InputDim(), b.Model.OutputDim())
	if err := b.Check(4, 3); err != nil {
		fmt.Fprintf(tw, "\nwarning: %s\n", err)
	}
	return tw.Flush()
}

func registerInspect(app *kingpin.Application) {
	c := new(inspectCommand)

	cmd := app.Command("inspect", "loads the artifacts and prints their kinds and shapes").
		Action(c.run)
	cmd.Flag("envfile", "load the environment variable file").
		Default("").
		StringVar(&c.envFile)
}
