package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/doitintl/hello/cmp-data-api/dataset/dal"
	"github.com/doitintl/hello/cmp-data-api/dataset/dal/iface"
	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
	"github.com/doitintl/hello/cmp-data-api/framework/connection"
	"github.com/doitintl/hello/cmp-data-api/logger"
)

// AccessService authorizes requests against the credentials cache, without
// touching the registry or the dataset's own collection.
type AccessService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	credentialsDal iface.Credentials
}

func NewAccessService(log logger.Provider, conn *connection.Connection) *AccessService {
	return &AccessService{
		log,
		conn,
		dal.NewCredentialsRedisWithClient(conn.Redis),
	}
}

// Authorize decides whether the request may proceed. A cache miss denies with
// unknown dataset; a cache infrastructure failure is returned as an error and
// is never reported as a permission denial.
func (s *AccessService) Authorize(ctx context.Context, name, method, apiKey, apiSecretKey string) (dataset.AccessDecision, error) {
	entry, err := s.credentialsDal.Get(ctx, name)
	if err != nil {
		if errors.Is(err, dal.ErrCacheMiss) {
			return dataset.AccessDeniedUnknownDataset, nil
		}

		return dataset.AccessDeniedForbidden, err
	}

	if entry.Public && method == http.MethodGet {
		return dataset.AccessAllowed, nil
	}

	if apiKey == entry.APIKey && apiSecretKey == entry.APISecretKey {
		return dataset.AccessAllowed, nil
	}

	return dataset.AccessDeniedForbidden, nil
}
