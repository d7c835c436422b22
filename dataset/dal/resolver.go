package dal

import (
	"context"
	"fmt"
	"sync"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
)

const recordsSubcollection = "records"

// SchemaResolver maps a dataset name to the collection path holding its
// records. Resolution verifies the dataset against the registry once and is
// memoized per process lifetime; repeated resolutions of the same name are
// cheap and idempotent. Invalidate drops a mapping when a dataset is
// de-provisioned.
type SchemaResolver struct {
	registry *RegistryFirestore

	mu       sync.Mutex
	resolved map[string]string
}

func NewSchemaResolver(registry *RegistryFirestore) *SchemaResolver {
	return &SchemaResolver{
		registry: registry,
		resolved: make(map[string]string),
	}
}

// Resolve returns the records collection path of the named dataset.
// An unknown name yields a DatasetNotFoundError, distinct from an
// authorization failure.
func (r *SchemaResolver) Resolve(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", dataset.ErrInvalidDatasetName
	}

	normalized := dataset.NormalizeName(name)

	r.mu.Lock()
	path, ok := r.resolved[normalized]
	r.mu.Unlock()

	if ok {
		return path, nil
	}

	// The registry descriptor is the source of truth for which datasets exist.
	// A collection path is never fabricated from the caller-supplied string
	// without this check.
	if _, err := r.registry.Get(ctx, normalized); err != nil {
		return "", err
	}

	path = fmt.Sprintf("%s/%s/%s", datasetsCollection, normalized, recordsSubcollection)

	r.mu.Lock()
	r.resolved[normalized] = path
	r.mu.Unlock()

	return path, nil
}

// Invalidate drops the memoized mapping for a dataset name.
func (r *SchemaResolver) Invalidate(name string) {
	r.mu.Lock()
	delete(r.resolved, dataset.NormalizeName(name))
	r.mu.Unlock()
}
