package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
)

type DataAPI struct {
	mock.Mock
}

func (m *DataAPI) ListRecords(ctx context.Context, name string) ([]dataset.Record, error) {
	args := m.Called(ctx, name)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]dataset.Record), args.Error(1)
}

func (m *DataAPI) QueryRecords(ctx context.Context, name, field, value, matchToken string) ([]dataset.Record, error) {
	args := m.Called(ctx, name, field, value, matchToken)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]dataset.Record), args.Error(1)
}

func (m *DataAPI) CreateRecords(ctx context.Context, name string, records []dataset.Record) ([]dataset.Record, error) {
	args := m.Called(ctx, name, records)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]dataset.Record), args.Error(1)
}

func (m *DataAPI) IngestFile(ctx context.Context, name, filePath string) ([]dataset.Record, error) {
	args := m.Called(ctx, name, filePath)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]dataset.Record), args.Error(1)
}

func (m *DataAPI) UpdateRecord(ctx context.Context, name, recordID string, fields dataset.Record) (dataset.Record, error) {
	args := m.Called(ctx, name, recordID, fields)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(dataset.Record), args.Error(1)
}

func (m *DataAPI) DeleteRecord(ctx context.Context, name, recordID string) (dataset.Record, error) {
	args := m.Called(ctx, name, recordID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(dataset.Record), args.Error(1)
}
