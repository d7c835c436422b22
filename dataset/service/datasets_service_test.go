package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/zeebo/assert"

	dalMocks "github.com/doitintl/hello/cmp-data-api/dataset/dal/mocks"
	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
	"github.com/doitintl/hello/cmp-data-api/logger"
	loggerMocks "github.com/doitintl/hello/cmp-data-api/logger/mocks"
)

type serviceFields struct {
	logger      *loggerMocks.ILogger
	registryDal *dalMocks.Registry
	recordsDal  *dalMocks.Records
}

func newTestService(f *serviceFields) *DataAPIService {
	return &DataAPIService{
		loggerProvider: func(ctx context.Context) logger.ILogger {
			return f.logger
		},
		registryDal: f.registryDal,
		recordsDal:  f.recordsDal,
	}
}

func TestDataAPIService_CreateRecords(t *testing.T) {
	type args struct {
		name    string
		records []dataset.Record
	}

	var (
		name    = "restaurants"
		records = []dataset.Record{
			{"title": "first"},
			{"title": "second"},
		}
		created = []dataset.Record{
			{"id": "doc-1", "title": "first"},
			{"id": "doc-2", "title": "second"},
		}
		testError = errors.New("test error")
	)

	ctx := context.Background()

	tests := []struct {
		name        string
		args        args
		wantErr     bool
		expectedErr error
		expected    []dataset.Record
		on          func(f *serviceFields)
	}{
		{
			name: "success - counter advances by the batch size",
			args: args{name: name, records: records},
			on: func(f *serviceFields) {
				f.recordsDal.On("Create", ctx, name, records).Return(created, nil)
				f.registryDal.On("IncrementRowCount", ctx, name, int64(2)).Return(nil)
			},
			expected: created,
		},
		{
			name:        "error - empty request",
			args:        args{name: name, records: nil},
			wantErr:     true,
			expectedErr: dataset.ErrEmptyRequest,
		},
		{
			name:    "error - failed batch leaves the counter untouched",
			args:    args{name: name, records: records},
			wantErr: true,
			on: func(f *serviceFields) {
				f.recordsDal.On("Create", ctx, name, records).Return(nil, testError)
				f.logger.On("Errorf", mock.Anything, mock.Anything).Return()
			},
			expectedErr: dataset.ErrStorage(opCreate, name),
		},
		{
			name:        "error - unknown dataset passes through",
			args:        args{name: name, records: records},
			wantErr:     true,
			expectedErr: dataset.ErrDatasetNotFound(name),
			on: func(f *serviceFields) {
				f.recordsDal.On("Create", ctx, name, records).Return(nil, dataset.ErrDatasetNotFound(name))
			},
		},
		{
			name: "success - counter divergence is logged, not returned",
			args: args{name: name, records: records},
			on: func(f *serviceFields) {
				f.recordsDal.On("Create", ctx, name, records).Return(created, nil)
				f.registryDal.On("IncrementRowCount", ctx, name, int64(2)).Return(testError)
				f.logger.On("Errorf", mock.Anything, mock.Anything).Return()
			},
			expected: created,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := serviceFields{
				logger:      &loggerMocks.ILogger{},
				registryDal: &dalMocks.Registry{},
				recordsDal:  &dalMocks.Records{},
			}

			if tt.on != nil {
				tt.on(&f)
			}

			s := newTestService(&f)

			got, err := s.CreateRecords(ctx, tt.args.name, tt.args.records)

			if (err != nil) != tt.wantErr {
				t.Errorf("DataAPIService.CreateRecords() error = %v, wantErr %v", err, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			}

			assert.DeepEqual(t, tt.expected, got)
			f.registryDal.AssertExpectations(t)
		})
	}
}

func TestDataAPIService_DeleteRecord(t *testing.T) {
	type args struct {
		name     string
		recordID string
	}

	var (
		name     = "restaurants"
		recordID = "doc-1"
		record   = dataset.Record{"id": recordID, "title": "first"}
	)

	ctx := context.Background()

	tests := []struct {
		name        string
		args        args
		wantErr     bool
		expectedErr error
		expected    dataset.Record
		on          func(f *serviceFields)
	}{
		{
			name: "success - counter decremented once",
			args: args{name: name, recordID: recordID},
			on: func(f *serviceFields) {
				f.recordsDal.On("Delete", ctx, name, recordID).Return(record, nil)
				f.registryDal.On("IncrementRowCount", ctx, name, int64(-1)).Return(nil)
			},
			expected: record,
		},
		{
			name:        "error - missing record leaves the counter untouched",
			args:        args{name: name, recordID: recordID},
			wantErr:     true,
			expectedErr: dataset.ErrRecordNotFound(recordID),
			on: func(f *serviceFields) {
				f.recordsDal.On("Delete", ctx, name, recordID).Return(nil, dataset.ErrRecordNotFound(recordID))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := serviceFields{
				logger:      &loggerMocks.ILogger{},
				registryDal: &dalMocks.Registry{},
				recordsDal:  &dalMocks.Records{},
			}

			if tt.on != nil {
				tt.on(&f)
			}

			s := newTestService(&f)

			got, err := s.DeleteRecord(ctx, tt.args.name, tt.args.recordID)

			if (err != nil) != tt.wantErr {
				t.Errorf("DataAPIService.DeleteRecord() error = %v, wantErr %v", err, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			}

			assert.DeepEqual(t, tt.expected, got)
			f.registryDal.AssertExpectations(t)
		})
	}
}

func TestDataAPIService_QueryRecords(t *testing.T) {
	type args struct {
		name       string
		field      string
		value      string
		matchToken string
	}

	var (
		name    = "restaurants"
		field   = "city"
		value   = "paris"
		records = []dataset.Record{{"id": "doc-1", "city": "paris"}}
	)

	ctx := context.Background()

	tests := []struct {
		name        string
		args        args
		wantErr     bool
		expectedErr error
		expected    []dataset.Record
		on          func(f *serviceFields)
	}{
		{
			name: "success - default exact match",
			args: args{name: name, field: field, value: value},
			on: func(f *serviceFields) {
				f.recordsDal.On("Query", ctx, name, field, value, dataset.MatchMode{Kind: dataset.MatchEquals}).
					Return(records, nil)
			},
			expected: records,
		},
		{
			name: "success - operator match",
			args: args{name: name, field: field, value: value, matchToken: "gte"},
			on: func(f *serviceFields) {
				f.recordsDal.On("Query", ctx, name, field, value, dataset.MatchMode{Kind: dataset.MatchOperator, Operator: ">="}).
					Return(records, nil)
			},
			expected: records,
		},
		{
			name:        "error - unsupported match token never reaches the store",
			args:        args{name: name, field: field, value: value, matchToken: "between"},
			wantErr:     true,
			expectedErr: dataset.ErrUnsupportedMatchMode("between"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := serviceFields{
				logger:      &loggerMocks.ILogger{},
				registryDal: &dalMocks.Registry{},
				recordsDal:  &dalMocks.Records{},
			}

			if tt.on != nil {
				tt.on(&f)
			}

			s := newTestService(&f)

			got, err := s.QueryRecords(ctx, tt.args.name, tt.args.field, tt.args.value, tt.args.matchToken)

			if (err != nil) != tt.wantErr {
				t.Errorf("DataAPIService.QueryRecords() error = %v, wantErr %v", err, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			}

			assert.DeepEqual(t, tt.expected, got)
			f.recordsDal.AssertExpectations(t)
		})
	}
}

func TestDataAPIService_UpdateRecord(t *testing.T) {
	type args struct {
		name     string
		recordID string
		fields   dataset.Record
	}

	var (
		name     = "restaurants"
		recordID = "doc-1"
		updated  = dataset.Record{"id": recordID, "title": "renamed"}
	)

	ctx := context.Background()

	tests := []struct {
		name        string
		args        args
		wantErr     bool
		expectedErr error
		expected    dataset.Record
		on          func(f *serviceFields)
	}{
		{
			name: "success - partial update",
			args: args{name: name, recordID: recordID, fields: dataset.Record{"title": "renamed"}},
			on: func(f *serviceFields) {
				f.recordsDal.On("Update", ctx, name, recordID, map[string]interface{}{"title": "renamed"}).
					Return(updated, nil)
			},
			expected: updated,
		},
		{
			name:        "error - body with only an id is an empty request",
			args:        args{name: name, recordID: recordID, fields: dataset.Record{"id": "something-else"}},
			wantErr:     true,
			expectedErr: dataset.ErrEmptyRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := serviceFields{
				logger:      &loggerMocks.ILogger{},
				registryDal: &dalMocks.Registry{},
				recordsDal:  &dalMocks.Records{},
			}

			if tt.on != nil {
				tt.on(&f)
			}

			s := newTestService(&f)

			got, err := s.UpdateRecord(ctx, tt.args.name, tt.args.recordID, tt.args.fields)

			if (err != nil) != tt.wantErr {
				t.Errorf("DataAPIService.UpdateRecord() error = %v, wantErr %v", err, tt.wantErr)
			} else if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			}

			assert.DeepEqual(t, tt.expected, got)
		})
	}
}
