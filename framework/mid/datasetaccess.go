package mid

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
	"github.com/doitintl/hello/cmp-data-api/dataset/service/iface"
	"github.com/doitintl/hello/cmp-data-api/framework/web"
	"github.com/doitintl/hello/cmp-data-api/logger"
)

const (
	apiKeyHeader       = "api_key"
	apiSecretKeyHeader = "api_secret_key"
)

// DatasetAccess authorizes every dataset route against the credentials
// cache before the handler runs. Public datasets pass GET requests
// without credentials; everything else needs a matching key pair.
func DatasetAccess(service iface.Access) web.Middleware {
	f := func(before web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			name := ctx.Param("apiName")

			l := logger.FromContext(ctx)
			l.SetLabel("apiName", name)

			decision, err := service.Authorize(
				ctx,
				name,
				ctx.Request.Method,
				ctx.GetHeader(apiKeyHeader),
				ctx.GetHeader(apiSecretKeyHeader),
			)
			if err != nil {
				l.Errorf("could not authorize request for %s api: %s", name, err)
				return web.NewRequestError(web.ErrInternalServerError, http.StatusInternalServerError)
			}

			switch decision {
			case dataset.AccessAllowed:
				return before(ctx)
			case dataset.AccessDeniedUnknownDataset:
				return web.NewRequestError(dataset.ErrDatasetNotFound(name), http.StatusNotFound)
			default:
				return web.NewRequestError(dataset.ErrForbidden, http.StatusForbidden)
			}
		}

		return h
	}

	return f
}
