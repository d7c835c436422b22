package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
	"github.com/doitintl/hello/cmp-data-api/framework/connection"
)

const (
	datasetsCollection = "dataApiDatasets"

	rowCountField = "rowCount"
)

// RegistryFirestore reads dataset descriptors and applies row-count deltas.
// Descriptors are provisioned out of band; this DAL never creates or deletes
// them.
type RegistryFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewRegistryFirestore(ctx context.Context, projectID string) (*RegistryFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewRegistryFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewRegistryFirestoreWithClient(fun connection.FirestoreFromContextFun) *RegistryFirestore {
	return &RegistryFirestore{
		firestoreClientFun: fun,
	}
}

func (d *RegistryFirestore) GetRef(ctx context.Context, name string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(datasetsCollection).Doc(dataset.NormalizeName(name))
}

func (d *RegistryFirestore) Get(ctx context.Context, name string) (*dataset.Descriptor, error) {
	if name == "" {
		return nil, dataset.ErrInvalidDatasetName
	}

	docSnap, err := d.GetRef(ctx, name).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, dataset.ErrDatasetNotFound(name)
		}

		return nil, err
	}

	var descriptor dataset.Descriptor

	if err := docSnap.DataTo(&descriptor); err != nil {
		return nil, err
	}

	return &descriptor, nil
}

// IncrementRowCount applies delta to the dataset's row counter as a single
// server-side atomic increment. Concurrent writers against the same dataset
// cannot lose updates.
func (d *RegistryFirestore) IncrementRowCount(ctx context.Context, name string, delta int64) error {
	if name == "" {
		return dataset.ErrInvalidDatasetName
	}

	_, err := d.GetRef(ctx, name).Update(ctx, []firestore.Update{
		{Path: rowCountField, Value: firestore.Increment(delta)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return dataset.ErrDatasetNotFound(name)
		}

		return err
	}

	return nil
}
