package command

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/sokoverse/level-predictor/app/level"
	"github.com/sokoverse/level-predictor/app/predictor"
	"github.com/sokoverse/level-predictor/command/config"
	"github.com/sokoverse/level-predictor/handler"

	"github.com/mattn/go-isatty"
	"gopkg.in/alecthomas/kingpin.v2"
)

type predictCommand struct {
	envFile  string
	height   int
	width    int
	boxes    int
	minWalls int
	pretty   bool
}

func (c *predictCommand) run(*kingpin.ParseContext) error {
	env, err := config.Load(c.envFile)
	if err != nil {
		return err
	}
	setupLogger(&env)

	src, err := config.ArtifactSource(&env)
	if err != nil {
		return err
	}

	out := handler.Evaluate(
		nocontext,
		predictor.NewArtifactPredictor(src),
		level.FromInts(c.height, c.width, c.boxes, c.minWalls),
		env.Server.HideDetails,
	)
	if err := c.print(out.Body); err != nil {
		return err
	}
	if out.Status != http.StatusOK {
		os.Exit(1)
	}
	return nil
}

func (c *predictCommand) print(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	if c.pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func registerPredict(app *kingpin.Application) {
	c := new(predictCommand)

	cmd := app.Command("predict", "predicts the generation rate of a single level").
		Action(c.run)
	cmd.Flag("envfile", "load the environment variable file").
		Default("").
		StringVar(&c.envFile)
	cmd.Flag("height", "level height").
		Required().
		IntVar(&c.height)
	cmd.Flag("width", "level width").
		Required().
		IntVar(&c.width)
	cmd.Flag("boxes", "number of boxes").
		Required().
		IntVar(&c.boxes)
	cmd.Flag("min-walls", "minimum number of walls").
		Required().
		IntVar(&c.minWalls)
	cmd.Flag("pretty", "pretty print the output").
		Default(
			fmt.Sprint(
				isatty.IsTerminal(
					os.Stdout.Fd(),
				),
			),
		).BoolVar(&c.pretty)
}
