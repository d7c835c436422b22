package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
)

const (
	trueToken  = "TRUE"
	falseToken = "FALSE"
)

// IngestFile parses an uploaded delimited file into records and feeds them
// through the same create path as ordinary writes. On success the temporary
// upload is removed best-effort; on a storage fault it is left in place for
// operator inspection.
func (s *DataAPIService) IngestFile(ctx context.Context, name, filePath string) ([]dataset.Record, error) {
	f, err := os.Open(filePath)
	if err != nil {
		s.loggerProvider(ctx).Errorf("error in %s for: %s api: %s", opIngest, name, err)
		return nil, dataset.ErrIngestionFailed
	}

	records, err := parseDelimited(f)

	f.Close()

	if err != nil {
		s.loggerProvider(ctx).Errorf("error in %s for: %s api: %s", opIngest, name, err)
		return nil, dataset.ErrIngestionFailed
	}

	created, err := s.CreateRecords(ctx, name, records)
	if err != nil {
		return nil, err
	}

	// Removal must not mask the successful ingestion.
	if err := os.Remove(filePath); err != nil {
		s.loggerProvider(ctx).Warningf("could not remove uploaded file %s for %s api: %s", filePath, name, err)
	}

	return created, nil
}

// parseDelimited converts csv rows into records, using the header row as the
// field names. Only tokens that are exactly TRUE or FALSE are coerced to
// booleans; any other value is kept as the raw string.
func parseDelimited(r io.Reader) ([]dataset.Record, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	var records []dataset.Record

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+1, err)
		}

		record := make(dataset.Record, len(header))
		for i, field := range header {
			record[field] = coerceToken(row[i])
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no data rows")
	}

	return records, nil
}

func coerceToken(token string) interface{} {
	switch token {
	case trueToken:
		return true
	case falseToken:
		return false
	}

	return token
}
