package command

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sokoverse/level-predictor/app/artifact"
	"github.com/sokoverse/level-predictor/command/config"
	"github.com/sokoverse/level-predictor/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testModel  = "kind: constant\ninputs: 4\nvalues: [2.0, 0.5, 3.0]\n"
	testScaler = "kind: identity\ndim: 4\n"
)

func writeArtifacts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "prediction"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prediction", "model.yaml"), []byte(testModel), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prediction", "scaler.yaml"), []byte(testScaler), 0o600))
	return dir
}

func testConfig(root string, cache bool) *config.EnvConfig {
	c := new(config.EnvConfig)
	c.Artifacts.Root = root
	c.Artifacts.ModelPath = "prediction/model.yaml"
	c.Artifacts.ScalerPath = "prediction/scaler.yaml"
	c.Artifacts.Cache = cache
	return c
}

func TestBuildSource_Cached(t *testing.T) {
	dir := writeArtifacts(t)
	m := metric.RegisterMetrics(prometheus.NewRegistry())

	src, err := buildSource(testConfig(dir, true), m)
	require.NoError(t, err)
	assert.IsType(t, &artifact.CachedSource{}, src)

	for i := 0; i < 3; i++ {
		_, err = src.Load(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ArtifactLoads.WithLabelValues("success")))
}

func TestBuildSource_Uncached(t *testing.T) {
	dir := writeArtifacts(t)
	m := metric.RegisterMetrics(prometheus.NewRegistry())

	src, err := buildSource(testConfig(dir, false), m)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = src.Load(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ArtifactLoads.WithLabelValues("success")))
}

func TestDescribe(t *testing.T) {
	dir := writeArtifacts(t)
	src, err := config.ArtifactSource(testConfig(dir, false))
	require.NoError(t, err)
	b, err := src.Load(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, describe(&buf, b))
	out := buf.String()
	assert.Contains(t, out, "ARTIFACT")
	assert.Regexp(t, `scaler\s+identity\s+4\s+4`, out)
	assert.Regexp(t, `model\s+constant\s+4\s+3`, out)
	assert.NotContains(t, out, "warning")
}

func TestDescribe_ShapeWarning(t *testing.T) {
	scaler, err := artifact.NewIdentityScaler(3)
	require.NoError(t, err)
	model, err := artifact.NewConstantModel(3, []float64{1, 2, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, describe(&buf, &artifact.Bundle{Scaler: scaler, Model: model}))
	assert.Contains(t, buf.String(), "warning:")
}

func TestNewApp(t *testing.T) {
	app := newApp()
	assert.NotNil(t, app.GetFlag("version"))
	for _, name := range []string{"server", "predict", "inspect"} {
		assert.NotNil(t, app.GetCommand(name), name)
	}
}
