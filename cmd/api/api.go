package api

import (
	"net/http"
	"os"

	"github.com/doitintl/hello/cmp-data-api/cmd/api/handlers"
	datasetHandlers "github.com/doitintl/hello/cmp-data-api/dataset/handlers"
	datasetService "github.com/doitintl/hello/cmp-data-api/dataset/service"
	"github.com/doitintl/hello/cmp-data-api/framework/connection"
	"github.com/doitintl/hello/cmp-data-api/framework/mid"
	"github.com/doitintl/hello/cmp-data-api/framework/web"
	"github.com/doitintl/hello/cmp-data-api/logger"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	app.Get("/health", handlers.Health)

	access := datasetService.NewAccessService(loggerProvider, a.conn)
	datasets := datasetHandlers.NewDatasets(loggerProvider, a.conn)

	apiGroup := web.NewGroup(app, "/api", mid.DatasetAccess(access))
	{
		apiGroup.Get("/:apiName", datasets.ListRecords)
		apiGroup.Get("/:apiName/:field/:value", datasets.QueryRecords)
		apiGroup.Post("/:apiName", datasets.CreateRecords)
		apiGroup.Post("/:apiName/upload", datasets.UploadRecords)
		apiGroup.Put("/:apiName/:id", datasets.UpdateRecord)
		apiGroup.Delete("/:apiName/:id", datasets.DeleteRecord)
	}

	return app
}
