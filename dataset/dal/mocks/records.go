package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
)

type Records struct {
	mock.Mock
}

func (m *Records) List(ctx context.Context, name string) ([]dataset.Record, error) {
	args := m.Called(ctx, name)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]dataset.Record), args.Error(1)
}

func (m *Records) Query(ctx context.Context, name, field, value string, mode dataset.MatchMode) ([]dataset.Record, error) {
	args := m.Called(ctx, name, field, value, mode)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]dataset.Record), args.Error(1)
}

func (m *Records) Create(ctx context.Context, name string, records []dataset.Record) ([]dataset.Record, error) {
	args := m.Called(ctx, name, records)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]dataset.Record), args.Error(1)
}

func (m *Records) Get(ctx context.Context, name, recordID string) (dataset.Record, error) {
	args := m.Called(ctx, name, recordID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(dataset.Record), args.Error(1)
}

func (m *Records) Update(ctx context.Context, name, recordID string, fields map[string]interface{}) (dataset.Record, error) {
	args := m.Called(ctx, name, recordID, fields)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(dataset.Record), args.Error(1)
}

func (m *Records) Delete(ctx context.Context, name, recordID string) (dataset.Record, error) {
	args := m.Called(ctx, name, recordID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(dataset.Record), args.Error(1)
}
