package baseline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceProfile = "profile"
)

var ErrUnknownSource = errors.New("unknown baseline source")

// SourceFactory is a function type that creates a Source from its options
type SourceFactory func(opts SourceOptions) (Source, error)

// Registry manages baseline source factories
type Registry interface {
	// Register adds a new source factory
	Register(name string, factory SourceFactory) error
	// Create instantiates the named source
	Create(name string, opts SourceOptions) (Source, error)
	// ListSources returns the registered source names, sorted
	ListSources() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
}

// NewRegistry creates a registry pre-populated with the given factories.
func NewRegistry(factories map[string]SourceFactory) Registry {
	r := &registry{
		factories: make(map[string]SourceFactory, len(factories)),
	}
	for name, factory := range factories {
		r.factories[name] = factory
	}
	return r
}

// NewDefaultRegistry knows the built-in, file and profile sources.
func NewDefaultRegistry() Registry {
	return NewRegistry(map[string]SourceFactory{
		SourceDefault: DefaultSourceFactory,
		SourceFile:    FileSourceFactory,
		SourceProfile: ProfileSourceFactory,
	})
}

func (r *registry) Register(name string, factory SourceFactory) error {
	if name == "" {
		return fmt.Errorf("source name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("source %q is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *registry) Create(name string, opts SourceOptions) (Source, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}

	return factory(opts)
}

func (r *registry) ListSources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load resolves the named source and reads the dataset from it. Callers load
// once at start-up and hand the value to the calculator.
func Load(ctx context.Context, r Registry, name string, opts SourceOptions) (domain.BaselineDataset, error) {
	logger := zerolog.Ctx(ctx)

	src, err := r.Create(name, opts)
	if err != nil {
		return domain.BaselineDataset{}, fmt.Errorf("failed to create baseline source: %w", err)
	}

	dataset, err := src.Load(ctx)
	if err != nil {
		return domain.BaselineDataset{}, fmt.Errorf("failed to load baseline from %s source: %w", name, err)
	}

	logger.Info().
		Str("source", name).
		Str("path", opts.Path).
		Str("profile", opts.Profile).
		Int("total_customers", dataset.TotalCustomers).
		Float64("current_retention_rate", dataset.CurrentRetentionRate).
		Msg("baseline dataset loaded")

	return dataset, nil
}
