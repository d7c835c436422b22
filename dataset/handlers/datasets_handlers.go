package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
	"github.com/doitintl/hello/cmp-data-api/dataset/service"
	"github.com/doitintl/hello/cmp-data-api/dataset/service/iface"
	"github.com/doitintl/hello/cmp-data-api/framework/connection"
	"github.com/doitintl/hello/cmp-data-api/framework/web"
	"github.com/doitintl/hello/cmp-data-api/logger"
)

const uploadFormField = "file"

type Datasets struct {
	loggerProvider logger.Provider
	service        iface.DataAPI
}

func NewDatasets(log logger.Provider, conn *connection.Connection) *Datasets {
	s := service.NewDataAPIService(log, conn)

	return &Datasets{
		log,
		s,
	}
}

// ListRecords returns every record of the dataset.
func (h *Datasets) ListRecords(ctx *gin.Context) error {
	name := ctx.Param("apiName")

	records, err := h.service.ListRecords(ctx, name)
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, records, http.StatusOK)
}

// QueryRecords returns the records matching the field/value pair under the
// optional "match" query parameter.
func (h *Datasets) QueryRecords(ctx *gin.Context) error {
	name := ctx.Param("apiName")
	field := ctx.Param("field")
	value := ctx.Param("value")
	match := ctx.Query("match")

	records, err := h.service.QueryRecords(ctx, name, field, value, match)
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, records, http.StatusOK)
}

// CreateRecords accepts a single record object or an array of records.
func (h *Datasets) CreateRecords(ctx *gin.Context) error {
	name := ctx.Param("apiName")

	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	records, err := decodeRecords(body)
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	created, err := h.service.CreateRecords(ctx, name, records)
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, created, http.StatusOK)
}

// UploadRecords ingests a multipart csv upload as a single batch.
func (h *Datasets) UploadRecords(ctx *gin.Context) error {
	name := ctx.Param("apiName")

	fileHeader, err := ctx.FormFile(uploadFormField)
	if err != nil {
		return web.NewRequestError(dataset.ErrIngestionFailed, http.StatusBadRequest)
	}

	filePath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(fileHeader.Filename))

	if err := ctx.SaveUploadedFile(fileHeader, filePath); err != nil {
		h.loggerProvider(ctx).Errorf("could not save upload for %s api: %s", name, err)
		return web.NewRequestError(web.ErrInternalServerError, http.StatusInternalServerError)
	}

	created, err := h.service.IngestFile(ctx, name, filePath)
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, created, http.StatusOK)
}

// UpdateRecord applies a partial-field merge to one record.
func (h *Datasets) UpdateRecord(ctx *gin.Context) error {
	name := ctx.Param("apiName")
	recordID := ctx.Param("id")

	var fields dataset.Record
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	record, err := h.service.UpdateRecord(ctx, name, recordID, fields)
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, record, http.StatusOK)
}

// DeleteRecord deletes one record and returns it.
func (h *Datasets) DeleteRecord(ctx *gin.Context) error {
	name := ctx.Param("apiName")
	recordID := ctx.Param("id")

	record, err := h.service.DeleteRecord(ctx, name, recordID)
	if err != nil {
		return requestError(err)
	}

	return web.Respond(ctx, record, http.StatusOK)
}
