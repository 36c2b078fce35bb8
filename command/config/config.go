package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig stores the system configuration.
type EnvConfig struct {
	Debug bool `envconfig:"PREDICTOR_DEBUG"`
	Trace bool `envconfig:"PREDICTOR_TRACE"`

	Server struct {
		Port        string `envconfig:"PREDICTOR_HTTP_BIND" default:":8080"`
		HideDetails bool   `envconfig:"PREDICTOR_HIDE_ERROR_DETAILS" default:"false"`
	}

	Artifacts struct {
		Root       string `envconfig:"PREDICTOR_ROOT" default:"."`
		ModelPath  string `envconfig:"PREDICTOR_MODEL_PATH" default:"prediction/level_prediction_model.yaml"`
		ScalerPath string `envconfig:"PREDICTOR_SCALER_PATH" default:"prediction/scaler.yaml"`
		Manifest   string `envconfig:"PREDICTOR_MANIFEST"`
		Cache      bool   `envconfig:"PREDICTOR_CACHE_ARTIFACTS" default:"true"`
	}
}

// Load reads the optional environment file and then the configuration
// from the environment. A missing file is not an error.
func Load(envFile string) (EnvConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return EnvConfig{}, err
		}
	}
	return FromEnviron()
}

func FromEnviron() (EnvConfig, error) {
	var config EnvConfig
	err := envconfig.Process("", &config)
	if err != nil {
		return config, err
	}
	if config.Artifacts.Root == "" {
		config.Artifacts.Root = "."
	}
	return config, nil
}
