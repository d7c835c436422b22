package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
)

type Credentials struct {
	mock.Mock
}

func (m *Credentials) Get(ctx context.Context, name string) (*dataset.CredentialCacheEntry, error) {
	args := m.Called(ctx, name)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*dataset.CredentialCacheEntry), args.Error(1)
}
