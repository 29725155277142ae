package handlerUtil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ManhwaCatalog/pkg/response"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h fiber.Handler) (int, ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", h)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	var body ErrorResponse
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleKeepsTaggedStatus(t *testing.T) {
	errHandler := New(logrus.New())
	tagged := response.WithCause(response.NewError(http.StatusBadGateway, "upstream failed"), errors.New("quota"))

	status, body := serve(t, func(c *fiber.Ctx) error {
		return errHandler.Handle(c, "req-1", tagged, "/", "test")
	})

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "upstream failed: quota", body.Error)
	assert.Empty(t, body.TraceID)
}

func TestHandleUntaggedCarriesTraceID(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	errHandler := New(logrus.New())

	status, body := serve(t, func(c *fiber.Ctx) error {
		return errHandler.Handle(c, "req-2", errors.New("boom"), "/", "test")
	})

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "boom", body.Error)
	assert.Equal(t, "req-2", body.TraceID)
}

func TestHandleBadRequestShape(t *testing.T) {
	errHandler := New(logrus.New())

	status, body := serve(t, func(c *fiber.Ctx) error {
		return errHandler.HandleBadRequest(c, "req-3", "Title parameter is required")
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, ErrorResponse{Error: "Title parameter is required"}, body)
}

func TestHandlePageErrorPlainText(t *testing.T) {
	errHandler := New(logrus.New())

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return errHandler.HandlePageError(c, "req-4", response.NewError(http.StatusBadRequest, "bad id"), "test")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPageErrorLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level logrus.Level
	}{
		{name: "client error warns", err: response.NewError(http.StatusBadRequest, "bad id"), level: logrus.WarnLevel},
		{name: "store failure errors", err: response.NewError(http.StatusInternalServerError, "db down"), level: logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			errHandler := New(logger)

			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return errHandler.HandlePageError(c, "req-5", tt.err, "test")
			})

			_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, tt.level, hook.LastEntry().Level)
		})
	}
}

func TestHandleLogsUpstreamAsError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	errHandler := New(logger)

	_, _ = serve(t, func(c *fiber.Ctx) error {
		return errHandler.Handle(c, "req-6", response.NewError(http.StatusBadGateway, "upstream failed"), "/", "test")
	})
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)

	_, _ = serve(t, func(c *fiber.Ctx) error {
		return errHandler.Handle(c, "req-7", response.NewError(http.StatusConflict, "taken"), "/", "test")
	})
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
