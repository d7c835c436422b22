package mocks

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/mock"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
)

type Registry struct {
	mock.Mock
}

func (m *Registry) GetRef(ctx context.Context, name string) *firestore.DocumentRef {
	args := m.Called(ctx, name)

	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(*firestore.DocumentRef)
}

func (m *Registry) Get(ctx context.Context, name string) (*dataset.Descriptor, error) {
	args := m.Called(ctx, name)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*dataset.Descriptor), args.Error(1)
}

func (m *Registry) IncrementRowCount(ctx context.Context, name string, delta int64) error {
	args := m.Called(ctx, name, delta)
	return args.Error(0)
}
