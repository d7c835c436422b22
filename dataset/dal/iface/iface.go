//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"cloud.google.com/go/firestore"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
)

type Registry interface {
	GetRef(ctx context.Context, name string) *firestore.DocumentRef
	Get(ctx context.Context, name string) (*dataset.Descriptor, error)
	IncrementRowCount(ctx context.Context, name string, delta int64) error
}

type Records interface {
	List(ctx context.Context, name string) ([]dataset.Record, error)
	Query(ctx context.Context, name, field, value string, mode dataset.MatchMode) ([]dataset.Record, error)
	Create(ctx context.Context, name string, records []dataset.Record) ([]dataset.Record, error)
	Get(ctx context.Context, name, recordID string) (dataset.Record, error)
	Update(ctx context.Context, name, recordID string, fields map[string]interface{}) (dataset.Record, error)
	Delete(ctx context.Context, name, recordID string) (dataset.Record, error)
}

type Credentials interface {
	Get(ctx context.Context, name string) (*dataset.CredentialCacheEntry, error)
}
