package dal

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
	"github.com/doitintl/hello/cmp-data-api/framework/connection"
)

// prefixUpperBound closes a prefix range query; U+F8FF sorts after any valid
// document field value.
const prefixUpperBound = "\uf8ff"

// RecordsFirestore implements generic record CRUD against whatever collection
// the resolver hands back for a dataset name.
type RecordsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	resolver           *SchemaResolver
}

func NewRecordsFirestoreWithClient(fun connection.FirestoreFromContextFun, resolver *SchemaResolver) *RecordsFirestore {
	return &RecordsFirestore{
		firestoreClientFun: fun,
		resolver:           resolver,
	}
}

func (d *RecordsFirestore) collection(ctx context.Context, name string) (*firestore.CollectionRef, error) {
	path, err := d.resolver.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	return d.firestoreClientFun(ctx).Collection(path), nil
}

func snapshotToRecord(docSnap *firestore.DocumentSnapshot) dataset.Record {
	record := dataset.Record(docSnap.Data())
	record[dataset.RecordIDField] = docSnap.Ref.ID

	return record
}

func drainQuery(ctx context.Context, query firestore.Query) ([]dataset.Record, error) {
	records := make([]dataset.Record, 0)

	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		records = append(records, snapshotToRecord(docSnap))
	}

	return records, nil
}

// matchesValue applies the scan-side match strategies that the store cannot
// express as a filter. Only string field values can match.
func matchesValue(fieldValue interface{}, value string, kind dataset.MatchKind) bool {
	s, ok := fieldValue.(string)
	if !ok {
		return false
	}

	switch kind {
	case dataset.MatchSuffix:
		return strings.HasSuffix(s, value)
	case dataset.MatchSubstring:
		return strings.Contains(s, value)
	}

	return false
}

// List returns every record of the dataset in store-defined order.
func (d *RecordsFirestore) List(ctx context.Context, name string) ([]dataset.Record, error) {
	collection, err := d.collection(ctx, name)
	if err != nil {
		return nil, err
	}

	return drainQuery(ctx, collection.Query)
}

// Query returns the records whose field matches value under the given mode.
// Equality, comparison operators and prefix matching are translated to store
// filters; suffix and substring matching scan the collection and filter here.
func (d *RecordsFirestore) Query(ctx context.Context, name, field, value string, mode dataset.MatchMode) ([]dataset.Record, error) {
	if field == "" {
		return nil, dataset.ErrInvalidFieldName
	}

	collection, err := d.collection(ctx, name)
	if err != nil {
		return nil, err
	}

	switch mode.Kind {
	case dataset.MatchEquals:
		return drainQuery(ctx, collection.Where(field, "==", value))
	case dataset.MatchOperator:
		return drainQuery(ctx, collection.Where(field, mode.Operator, value))
	case dataset.MatchPrefix:
		return drainQuery(ctx, collection.
			Where(field, ">=", value).
			Where(field, "<", value+prefixUpperBound))
	}

	all, err := drainQuery(ctx, collection.Query)
	if err != nil {
		return nil, err
	}

	matched := make([]dataset.Record, 0, len(all))

	for _, record := range all {
		if matchesValue(record[field], value, mode.Kind) {
			matched = append(matched, record)
		}
	}

	return matched, nil
}

// Create persists the given records in a single atomic write batch and
// returns them with their assigned ids. A failed commit persists nothing.
func (d *RecordsFirestore) Create(ctx context.Context, name string, records []dataset.Record) ([]dataset.Record, error) {
	if len(records) == 0 {
		return nil, dataset.ErrEmptyRequest
	}

	collection, err := d.collection(ctx, name)
	if err != nil {
		return nil, err
	}

	batch := d.firestoreClientFun(ctx).Batch()
	created := make([]dataset.Record, 0, len(records))

	for _, record := range records {
		docRef := collection.NewDoc()
		fields := record.Fields()
		batch.Create(docRef, fields)

		withID := dataset.Record(fields)
		withID[dataset.RecordIDField] = docRef.ID
		created = append(created, withID)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

// Get returns a single record by id.
func (d *RecordsFirestore) Get(ctx context.Context, name, recordID string) (dataset.Record, error) {
	if recordID == "" {
		return nil, dataset.ErrInvalidRecordID
	}

	collection, err := d.collection(ctx, name)
	if err != nil {
		return nil, err
	}

	docSnap, err := collection.Doc(recordID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, dataset.ErrRecordNotFound(recordID)
		}

		return nil, err
	}

	return snapshotToRecord(docSnap), nil
}

// Update merges the given fields into the record and returns the post-update
// record. Fields not present in the request are left untouched.
func (d *RecordsFirestore) Update(ctx context.Context, name, recordID string, fields map[string]interface{}) (dataset.Record, error) {
	if recordID == "" {
		return nil, dataset.ErrInvalidRecordID
	}

	collection, err := d.collection(ctx, name)
	if err != nil {
		return nil, err
	}

	docRef := collection.Doc(recordID)

	// Set with MergeAll would create a missing document; probe first so a
	// missing id is a NotFound, not an upsert.
	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, dataset.ErrRecordNotFound(recordID)
		}

		return nil, err
	}

	if _, err := docRef.Set(ctx, fields, firestore.MergeAll); err != nil {
		return nil, err
	}

	docSnap, err := docRef.Get(ctx)
	if err != nil {
		return nil, err
	}

	return snapshotToRecord(docSnap), nil
}

// Delete removes a single record by id and returns the deleted record.
func (d *RecordsFirestore) Delete(ctx context.Context, name, recordID string) (dataset.Record, error) {
	record, err := d.Get(ctx, name, recordID)
	if err != nil {
		return nil, err
	}

	collection, err := d.collection(ctx, name)
	if err != nil {
		return nil, err
	}

	if _, err := collection.Doc(recordID).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, dataset.ErrRecordNotFound(recordID)
		}

		return nil, err
	}

	return record, nil
}
