package handlers

import (
	"encoding/json"
	"net/http"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
	"github.com/doitintl/hello/cmp-data-api/framework/web"
)

// decodeRecords accepts either a single JSON object or a JSON array of
// objects, matching what callers are allowed to POST.
func decodeRecords(body []byte) ([]dataset.Record, error) {
	var records []dataset.Record
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var record dataset.Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, err
	}

	return []dataset.Record{record}, nil
}

// requestError maps service errors onto http status codes.
func requestError(err error) error {
	switch {
	case dataset.IsNotFound(err):
		return web.NewRequestError(err, http.StatusNotFound)
	case dataset.IsBadRequest(err):
		return web.NewRequestError(err, http.StatusBadRequest)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
