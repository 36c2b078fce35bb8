// Copyright 2020 Drone.IO Inc. All rights reserved.
// Use of this source code is governed by the Polyform License
// that can be found in the LICENSE file.

package command

import (
	"context"
	"os"

	"github.com/drone/runner-go/logger"
	"github.com/sirupsen/logrus"
	"github.com/sokoverse/level-predictor/command/config"

	"gopkg.in/alecthomas/kingpin.v2"
)

// program version
var version = "v1.0.0"

// empty context
var nocontext = context.Background()

// Command parses the command line arguments and then executes a subcommand program.
func Command() {
	app := newApp()
	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func newApp() *kingpin.Application {
	app := kingpin.New("level-predictor", "sokoban level generation-rate predictor")
	registerServer(app)
	registerPredict(app)
	registerInspect(app)

	app.Version(version)
	return app
}

func setupLogger(c *config.EnvConfig) {
	logger.Default = logger.Logrus(
		logrus.NewEntry(
			logrus.StandardLogger(),
		),
	)
	if c.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if c.Trace {
		logrus.SetLevel(logrus.TraceLevel)
	}
}
