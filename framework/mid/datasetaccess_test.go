package mid

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
	"github.com/doitintl/hello/cmp-data-api/dataset/service/mocks"
	"github.com/doitintl/hello/cmp-data-api/framework/web"
)

func GetContext(method string) *gin.Context {
	request := httptest.NewRequest(method, "http://example.com/api/restaurants", nil)
	request.Header.Set("api_key", "key-1")
	request.Header.Set("api_secret_key", "secret-1")

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = request
	ctx.Params = []gin.Param{
		{Key: "apiName", Value: "restaurants"},
	}

	return ctx
}

func TestDatasetAccess_Allowed(t *testing.T) {
	handlerCalled := false
	testHandler := func(ctx *gin.Context) error { handlerCalled = true; return nil }
	ctx := GetContext(http.MethodGet)

	access := &mocks.Access{}
	access.On("Authorize", mock.Anything, "restaurants", http.MethodGet, "key-1", "secret-1").
		Return(dataset.AccessAllowed, nil)

	err := DatasetAccess(access)(testHandler)(ctx)

	assert.Nil(t, err)
	assert.True(t, handlerCalled)
}

func TestDatasetAccess_UnknownDataset(t *testing.T) {
	testHandler := func(ctx *gin.Context) error { t.Fatal("handler must not run"); return nil }
	ctx := GetContext(http.MethodGet)

	access := &mocks.Access{}
	access.On("Authorize", mock.Anything, "restaurants", http.MethodGet, "key-1", "secret-1").
		Return(dataset.AccessDeniedUnknownDataset, nil)

	err := DatasetAccess(access)(testHandler)(ctx)

	if assert.Error(t, err) {
		var webErr *web.Error
		if assert.ErrorAs(t, err, &webErr) {
			assert.Equal(t, http.StatusNotFound, webErr.Status)
		}
	}
}

func TestDatasetAccess_Forbidden(t *testing.T) {
	testHandler := func(ctx *gin.Context) error { t.Fatal("handler must not run"); return nil }
	ctx := GetContext(http.MethodPost)

	access := &mocks.Access{}
	access.On("Authorize", mock.Anything, "restaurants", http.MethodPost, "key-1", "secret-1").
		Return(dataset.AccessDeniedForbidden, nil)

	err := DatasetAccess(access)(testHandler)(ctx)

	if assert.Error(t, err) {
		var webErr *web.Error
		if assert.ErrorAs(t, err, &webErr) {
			assert.ErrorIs(t, webErr.Err, dataset.ErrForbidden)
			assert.Equal(t, http.StatusForbidden, webErr.Status)
		}
	}
}

func TestDatasetAccess_CacheFailure(t *testing.T) {
	testHandler := func(ctx *gin.Context) error { t.Fatal("handler must not run"); return nil }
	ctx := GetContext(http.MethodGet)

	access := &mocks.Access{}
	access.On("Authorize", mock.Anything, "restaurants", http.MethodGet, "key-1", "secret-1").
		Return(dataset.AccessDeniedForbidden, errors.New("connection refused"))

	err := DatasetAccess(access)(testHandler)(ctx)

	if assert.Error(t, err) {
		var webErr *web.Error
		if assert.ErrorAs(t, err, &webErr) {
			assert.Equal(t, http.StatusInternalServerError, webErr.Status)
		}
	}
}
