package service

import (
	"context"

	"github.com/doitintl/hello/cmp-data-api/dataset/dal"
	"github.com/doitintl/hello/cmp-data-api/dataset/dal/iface"
	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
	"github.com/doitintl/hello/cmp-data-api/framework/connection"
	"github.com/doitintl/hello/cmp-data-api/logger"
)

// Operation names reported to callers on storage faults.
const (
	opList   = "getting all values from db"
	opQuery  = "getting value by field from db"
	opCreate = "inserting data into db"
	opIngest = "uploading csv file"
	opUpdate = "updating record"
	opDelete = "deleting record"
)

// DataAPIService is the generic CRUD engine. Every operation resolves the
// target collection from the caller-supplied dataset name and keeps the
// registry row count in step with committed mutations.
type DataAPIService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	registryDal    iface.Registry
	recordsDal     iface.Records
}

func NewDataAPIService(log logger.Provider, conn *connection.Connection) *DataAPIService {
	registry := dal.NewRegistryFirestoreWithClient(conn.Firestore)
	resolver := dal.NewSchemaResolver(registry)

	return &DataAPIService{
		log,
		conn,
		registry,
		dal.NewRecordsFirestoreWithClient(conn.Firestore, resolver),
	}
}

func (s *DataAPIService) ListRecords(ctx context.Context, name string) ([]dataset.Record, error) {
	records, err := s.recordsDal.List(ctx, name)
	if err != nil {
		return nil, s.storageError(ctx, err, opList, name)
	}

	return records, nil
}

func (s *DataAPIService) QueryRecords(ctx context.Context, name, field, value, matchToken string) ([]dataset.Record, error) {
	mode, err := dataset.ParseMatchMode(matchToken)
	if err != nil {
		return nil, err
	}

	records, err := s.recordsDal.Query(ctx, name, field, value, mode)
	if err != nil {
		return nil, s.storageError(ctx, err, opQuery, name)
	}

	return records, nil
}

// CreateRecords persists the records and, only after the batch is confirmed,
// adds their count to the dataset's row counter. The batch is all-or-nothing,
// so a failed insert leaves the row count unchanged.
func (s *DataAPIService) CreateRecords(ctx context.Context, name string, records []dataset.Record) ([]dataset.Record, error) {
	if len(records) == 0 {
		return nil, dataset.ErrEmptyRequest
	}

	created, err := s.recordsDal.Create(ctx, name, records)
	if err != nil {
		return nil, s.storageError(ctx, err, opCreate, name)
	}

	s.addRowCount(ctx, name, int64(len(created)))

	return created, nil
}

func (s *DataAPIService) UpdateRecord(ctx context.Context, name, recordID string, fields dataset.Record) (dataset.Record, error) {
	updates := fields.Fields()
	if len(updates) == 0 {
		return nil, dataset.ErrEmptyRequest
	}

	record, err := s.recordsDal.Update(ctx, name, recordID, updates)
	if err != nil {
		return nil, s.storageError(ctx, err, opUpdate, name)
	}

	return record, nil
}

func (s *DataAPIService) DeleteRecord(ctx context.Context, name, recordID string) (dataset.Record, error) {
	record, err := s.recordsDal.Delete(ctx, name, recordID)
	if err != nil {
		return nil, s.storageError(ctx, err, opDelete, name)
	}

	s.addRowCount(ctx, name, -1)

	return record, nil
}

// addRowCount applies a committed mutation's delta to the registry counter.
// When the counter update fails the data store and the registry have already
// diverged; the divergence is logged and the caller's operation still
// succeeds. There is no reconciliation pass.
func (s *DataAPIService) addRowCount(ctx context.Context, name string, delta int64) {
	if err := s.registryDal.IncrementRowCount(ctx, name, delta); err != nil {
		s.loggerProvider(ctx).Errorf("row count diverged for %s api: failed to apply delta %d: %s", name, delta, err)
	}
}

// storageError passes caller-level errors through and converts anything else
// to a storage failure naming only the dataset and the attempted operation.
func (s *DataAPIService) storageError(ctx context.Context, err error, operation, name string) error {
	if dataset.IsNotFound(err) || dataset.IsBadRequest(err) {
		return err
	}

	s.loggerProvider(ctx).Errorf("error in %s for: %s api: %s", operation, name, err)

	return dataset.ErrStorage(operation, name)
}
