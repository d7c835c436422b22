package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
)

type Access struct {
	mock.Mock
}

func (m *Access) Authorize(ctx context.Context, name, method, apiKey, apiSecretKey string) (dataset.AccessDecision, error) {
	args := m.Called(ctx, name, method, apiKey, apiSecretKey)
	return args.Get(0).(dataset.AccessDecision), args.Error(1)
}
