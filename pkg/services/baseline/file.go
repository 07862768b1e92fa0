package baseline

import (
	"context"
	"fmt"

	"github.com/de-tools/retention-atlas/pkg/adapters"
	"github.com/de-tools/retention-atlas/pkg/models/domain"
	"github.com/de-tools/retention-atlas/pkg/models/store"
	"github.com/spf13/viper"
)

type fileSource struct {
	path string
}

// FileSourceFactory reads a single dataset from a yaml, json or toml file.
// Keys left out of the file keep their default values.
func FileSourceFactory(opts SourceOptions) (Source, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("file source requires a path")
	}
	return &fileSource{path: opts.Path}, nil
}

func (f *fileSource) Load(_ context.Context) (domain.BaselineDataset, error) {
	rec, err := LoadRecord(f.path)
	if err != nil {
		return domain.BaselineDataset{}, err
	}

	dataset := adapters.MapStoreBaselineToDomain(*rec)
	if err := dataset.Validate(); err != nil {
		return domain.BaselineDataset{}, err
	}
	return dataset, nil
}

func LoadRecord(path string) (*store.BaselineRecord, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setRecordDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var rec store.BaselineRecord
	if err := v.Unmarshal(&rec); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file: %w", err)
	}
	return &rec, nil
}

func setRecordDefaults(v *viper.Viper) {
	rec := adapters.MapDomainBaselineToStore(domain.DefaultBaseline())
	v.SetDefault("total_customers", rec.TotalCustomers)
	v.SetDefault("repeat_customers", rec.RepeatCustomers)
	v.SetDefault("current_retention_rate", rec.CurrentRetentionRate)
	v.SetDefault("baseline_order_value", rec.BaselineOrderValue)
	v.SetDefault("benchmark_retention_rate", rec.BenchmarkRetentionRate)
}
