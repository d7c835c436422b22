//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
)

type DataAPI interface {
	ListRecords(ctx context.Context, name string) ([]dataset.Record, error)
	QueryRecords(ctx context.Context, name, field, value, matchToken string) ([]dataset.Record, error)
	CreateRecords(ctx context.Context, name string, records []dataset.Record) ([]dataset.Record, error)
	IngestFile(ctx context.Context, name, filePath string) ([]dataset.Record, error)
	UpdateRecord(ctx context.Context, name, recordID string, fields dataset.Record) (dataset.Record, error)
	DeleteRecord(ctx context.Context, name, recordID string) (dataset.Record, error)
}

type Access interface {
	Authorize(ctx context.Context, name, method, apiKey, apiSecretKey string) (dataset.AccessDecision, error)
}
