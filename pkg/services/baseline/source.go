package baseline

import (
	"context"

	"github.com/de-tools/retention-atlas/pkg/models/domain"
)

// Source provides the baseline dataset the calculator projects from.
type Source interface {
	Load(ctx context.Context) (domain.BaselineDataset, error)
}

// SourceOptions locate the dataset for sources that read from disk.
type SourceOptions struct {
	Path    string
	Profile string
}

type staticSource struct {
	dataset domain.BaselineDataset
}

// NewStaticSource serves a fixed dataset, typically domain.DefaultBaseline().
func NewStaticSource(dataset domain.BaselineDataset) Source {
	return &staticSource{dataset: dataset}
}

func (s *staticSource) Load(_ context.Context) (domain.BaselineDataset, error) {
	return s.dataset, s.dataset.Validate()
}

func DefaultSourceFactory(_ SourceOptions) (Source, error) {
	return NewStaticSource(domain.DefaultBaseline()), nil
}
