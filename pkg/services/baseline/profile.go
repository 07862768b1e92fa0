package baseline

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/retention-atlas/pkg/adapters"
	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

var ErrProfileNotFound = errors.New("baseline profile not found")

// ProfileRegistry reads named datasets from an ini file, one section per profile:
//
//	[olist]
//	total_customers = 96096
//	repeat_customers = 2986
//	current_retention_rate = 3.12
//	baseline_order_value = 137
type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetDataset(ctx context.Context, profile string) (domain.BaselineDataset, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile file: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetDataset(_ context.Context, profile string) (domain.BaselineDataset, error) {
	section, err := r.cfg.GetSection(profile)
	if err != nil || len(section.Keys()) == 0 {
		return domain.BaselineDataset{}, fmt.Errorf("%w: %s", ErrProfileNotFound, profile)
	}

	rec := adapters.MapDomainBaselineToStore(domain.DefaultBaseline())
	if err := section.MapTo(&rec); err != nil {
		return domain.BaselineDataset{}, fmt.Errorf("failed to parse profile %s: %w", profile, err)
	}

	dataset := adapters.MapStoreBaselineToDomain(rec)
	if err := dataset.Validate(); err != nil {
		return domain.BaselineDataset{}, fmt.Errorf("profile %s: %w", profile, err)
	}
	return dataset, nil
}

type profileSource struct {
	path    string
	profile string
}

func ProfileSourceFactory(opts SourceOptions) (Source, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("profile source requires a path")
	}
	profile := opts.Profile
	if profile == "" {
		profile = ini.DefaultSection
	}
	return &profileSource{path: opts.Path, profile: profile}, nil
}

func (p *profileSource) Load(ctx context.Context) (domain.BaselineDataset, error) {
	reg, err := NewProfileRegistry(p.path)
	if err != nil {
		return domain.BaselineDataset{}, err
	}
	return reg.GetDataset(ctx, p.profile)
}
