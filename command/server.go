// Copyright 2020 Drone.IO Inc. All rights reserved.
// Use of this source code is governed by the Polyform License
// that can be found in the LICENSE file.

package command

import (
	"context"

	"github.com/drone/runner-go/server"
	"github.com/drone/signal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/sokoverse/level-predictor/app/artifact"
	"github.com/sokoverse/level-predictor/app/predictor"
	"github.com/sokoverse/level-predictor/command/config"
	"github.com/sokoverse/level-predictor/handler"
	"github.com/sokoverse/level-predictor/metric"

	"golang.org/x/sync/errgroup"
	"gopkg.in/alecthomas/kingpin.v2"
)

type serverCommand struct {
	envFile string
}

func (c *serverCommand) run(*kingpin.ParseContext) error {
	// load the configuration from the environment file and
	// the process environment.
	env, err := config.Load(c.envFile)
	if err != nil {
		return err
	}

	// setup the global logrus logger.
	setupLogger(&env)

	ctx, cancel := context.WithCancel(nocontext)
	defer cancel()

	// listen for termination signals to gracefully shutdown the server.
	ctx = signal.WithContextFunc(ctx, func() {
		println("server: received signal, terminating process")
		cancel()
	})

	metrics := metric.RegisterMetrics(prometheus.DefaultRegisterer)
	src, err := buildSource(&env, metrics)
	if err != nil {
		logrus.WithError(err).
			Errorln("server: cannot configure the artifact source")
		return err
	}

	// warm the cache. a failed load does not stop the server,
	// the next request retries it.
	if env.Artifacts.Cache {
		if _, loadErr := src.Load(ctx); loadErr != nil {
			logrus.WithError(loadErr).
				Warnln("server: cannot preload the artifacts")
		} else {
			logrus.Infoln("server: artifacts loaded")
		}
	}

	h := &handler.Handler{
		Predictor:   predictor.NewArtifactPredictor(src),
		Source:      src,
		Metrics:     metrics,
		Gatherer:    prometheus.DefaultGatherer,
		HideDetails: env.Server.HideDetails,
	}

	var g errgroup.Group
	serverInstance := server.Server{
		Addr:    env.Server.Port,
		Handler: h.Router(),
	}

	logrus.WithField("addr", env.Server.Port).
		Infoln("server: starting the server")

	g.Go(func() error {
		return serverInstance.ListenAndServe(ctx)
	})

	err = g.Wait()
	if err != nil {
		logrus.WithError(err).
			Errorln("server: shutting down the server")
	}
	return err
}

// buildSource returns the artifact source for the configuration,
// instrumented with metrics and optionally cached.
func buildSource(env *config.EnvConfig, metrics *metric.Metrics) (artifact.Source, error) {
	src, err := config.ArtifactSource(env)
	if err != nil {
		return nil, err
	}
	logger := logrus.WithField("cache", env.Artifacts.Cache)
	if fs, ok := src.(*artifact.FileSource); ok {
		logger = logger.WithField("model", fs.ModelPath).
			WithField("scaler", fs.ScalerPath)
	}
	logger.Infoln("server: artifact source configured")

	if metrics != nil {
		src = metrics.InstrumentSource(src)
	}
	if env.Artifacts.Cache {
		src = artifact.NewCachedSource(src)
	}
	return src, nil
}

func registerServer(app *kingpin.Application) {
	c := new(serverCommand)

	cmd := app.Command("server", "starts the prediction server").
		Default().
		Action(c.run)
	cmd.Flag("envfile", "load the environment variable file").
		Default("").
		StringVar(&c.envFile)
}
