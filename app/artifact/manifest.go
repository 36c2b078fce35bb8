package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drone/envsubst"
	"github.com/ghodss/yaml"
)

// Manifest names the artifact files of one deployment.
//
//	model: ${MODEL_DIR}/level_prediction_model.yaml
//	scaler: scaler.yaml
type Manifest struct {
	Model  string `json:"model"`
	Scaler string `json:"scaler"`
}

// LoadManifest reads a manifest, expanding environment variables before
// parsing. Relative paths are resolved against the manifest directory.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	expanded, err := envsubst.Eval(string(raw), os.Getenv)
	if err != nil {
		return nil, err
	}
	b, err := yaml.YAMLToJSON([]byte(expanded))
	if err != nil {
		return nil, err
	}
	m := new(Manifest)
	if err := json.Unmarshal(b, m); err != nil {
		return nil, err
	}
	if m.Model == "" || m.Scaler == "" {
		return nil, fmt.Errorf("manifest %s: model and scaler are required", path)
	}
	dir := filepath.Dir(path)
	m.Model = resolve(dir, m.Model)
	m.Scaler = resolve(dir, m.Scaler)
	return m, nil
}

// Source returns a FileSource reading the manifest's artifacts.
func (m *Manifest) Source() *FileSource {
	return &FileSource{ModelPath: m.Model, ScalerPath: m.Scaler}
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
