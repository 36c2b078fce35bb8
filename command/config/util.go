package config

import (
	"path/filepath"

	"github.com/sokoverse/level-predictor/app/artifact"
)

// ArtifactSource builds the artifact source described by the
// configuration. A manifest takes precedence over the individual paths.
// The returned source is not cached.
func ArtifactSource(c *EnvConfig) (artifact.Source, error) {
	if c.Artifacts.Manifest != "" {
		m, err := artifact.LoadManifest(resolve(c.Artifacts.Root, c.Artifacts.Manifest))
		if err != nil {
			return nil, err
		}
		return m.Source(), nil
	}
	return &artifact.FileSource{
		ModelPath:  resolve(c.Artifacts.Root, c.Artifacts.ModelPath),
		ScalerPath: resolve(c.Artifacts.Root, c.Artifacts.ScalerPath),
	}, nil
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
