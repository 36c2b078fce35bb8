package artifact

import (
	"context"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// FileSource reads the model and scaler from disk on every Load.
type FileSource struct {
	ModelPath  string
	ScalerPath string
}

func (s *FileSource) Load(ctx context.Context) (*Bundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	model, err := readModel(s.ModelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load model artifact %s", s.ModelPath)
	}
	scaler, err := readScaler(s.ScalerPath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load scaler artifact %s", s.ScalerPath)
	}
	return &Bundle{Scaler: scaler, Model: model}, nil
}

func readModel(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseModel(data)
}

func readScaler(path string) (Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScaler(data)
}

// CachedSource loads from the wrapped source once and then serves the
// same bundle for the life of the process. Failed loads are not cached.
type CachedSource struct {
	src    Source
	bundle *Bundle
	mutex  sync.RWMutex
}

func NewCachedSource(src Source) *CachedSource {
	return &CachedSource{src: src}
}

func (c *CachedSource) Load(ctx context.Context) (*Bundle, error) {
	c.mutex.RLock()
	b := c.bundle
	c.mutex.RUnlock()
	if b != nil {
		return b, nil
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.bundle != nil {
		return c.bundle, nil
	}
	b, err := c.src.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.bundle = b
	return b, nil
}

