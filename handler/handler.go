package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/sokoverse/level-predictor/app/artifact"
	"github.com/sokoverse/level-predictor/app/level"
	"github.com/sokoverse/level-predictor/app/predictor"
	"github.com/sokoverse/level-predictor/internal/httprender"
	"github.com/sokoverse/level-predictor/metric"
	"github.com/sokoverse/level-predictor/types"
)

// PredictPath is the route of the prediction endpoint.
const PredictPath = "/api/predict_generation_rate"

// maxBodySize bounds the request body; the payload is four numbers.
const maxBodySize = 1 << 16

var okStatus = "OK"

// Handler serves the prediction API.
type Handler struct {
	Predictor   predictor.Predictor
	Source      artifact.Source
	Metrics     *metric.Metrics
	Gatherer    prometheus.Gatherer
	HideDetails bool
}

// Router returns the HTTP routes.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(Logger)
	r.Use(middleware.Recoverer)

	r.Post(PredictPath, h.handlePredict)
	r.Get("/readyz", h.handleReady)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, okStatus) //nolint: errcheck
	})
	if h.Gatherer != nil {
		r.Mount("/metrics", promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (h *Handler) handlePredict(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		// an unreadable body is treated like an empty one and fails
		// validation.
		logrus.WithError(err).Warnln("predict: could not read request body")
		body = nil
	}

	start := time.Now()
	out := Evaluate(r.Context(), h.Predictor, level.Parse(body), h.HideDetails)
	h.observe(out, time.Since(start))

	if out.Status == http.StatusInternalServerError {
		logrus.WithContext(r.Context()).
			WithError(out.Err).
			WithField("predictor", h.Predictor.Name()).
			Errorln("predict: prediction failed")
	}
	httprender.JSON(w, out.Body, out.Status)
}

func (h *Handler) observe(out Outcome, d time.Duration) {
	if h.Metrics == nil {
		return
	}
	h.Metrics.ObserveStatus(out.Status)
	var verr *types.ValidationError
	switch {
	case errors.As(out.Err, &verr):
		h.Metrics.ValidationFailures.WithLabelValues(verr.Field).Inc()
	case out.Err != nil:
		h.Metrics.PredictionFailures.Inc()
		h.Metrics.PredictionDuration.Observe(d.Seconds())
	default:
		h.Metrics.PredictionDuration.Observe(d.Seconds())
	}
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.Source == nil {
		io.WriteString(w, okStatus) //nolint: errcheck
		return
	}
	if _, err := h.Source.Load(r.Context()); err != nil {
		logrus.WithError(err).Warnln("readyz: artifacts unavailable")
		httprender.Unavailable(w, err.Error())
		return
	}
	io.WriteString(w, okStatus) //nolint: errcheck
}
