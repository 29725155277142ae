package config

import (
	"context"
	"encoding/xml"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"ManhwaCatalog/internal/api/sitemap"
	"ManhwaCatalog/internal/entity"
	"ManhwaCatalog/internal/middleware"
	"ManhwaCatalog/internal/views"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct{}

func (stubExtractor) ExtractList(context.Context, string) (entity.ExtractedList, error) {
	return entity.ExtractedList{Title: "From Text", Manhwas: []string{}}, nil
}

type stubRenderer struct{}

func (stubRenderer) Render(source string) (template.HTML, error) {
	return template.HTML("<p>stub:" + template.HTMLEscapeString(source) + "</p>"), nil
}

func newTestServer(t *testing.T, extra ...ServerOption) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	logger := logrus.New()
	server, err := NewServer(append([]ServerOption{
		WithFiber(NewFiber(logger, views.New())),
		WithLogger(logger),
		WithDB(sqlx.NewDb(mockDB, "postgres")),
		WithMiddleware(),
		WithExtractor(stubExtractor{}),
	}, extra...)...)
	require.NoError(t, err)

	server.RegisterHandler()
	return server.Mount(), mock
}

func TestHealthAndFavicon(t *testing.T) {
	app, _ := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDKey))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/favicon.ico", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestUnknownRouteRendersNotFoundView(t *testing.T) {
	app, _ := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/no/such/page", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Page not found")
}

func TestRequestIDIsEchoed(t *testing.T) {
	app, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.RequestIDKey, "req-123")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(middleware.RequestIDKey))
}

func TestSearchEndToEnd(t *testing.T) {
	app, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE title ILIKE $1`)).
		WithArgs("%solo%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "categories"}).
			AddRow(int64(1), "Solo Leveling", "{Action}"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/search?title=solo", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[{"id":1,"title":"Solo Leveling","categories":["Action"]}]`, string(body))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchSendsQueryUntrimmed(t *testing.T) {
	app, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE title ILIKE $1`)).
		WithArgs("%Tower %").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "categories"}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/search?title=Tower%20", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSitemapCategoryURLsResolve(t *testing.T) {
	t.Setenv("SITE_URL", "")
	app, mock := newTestServer(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT unnest(categories) AS category`)).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).
			AddRow("Sci/Fi").
			AddRow(" Action\t").
			AddRow("Isekai Ñ").
			AddRow("Slice of Life"))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "Blog"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM "List"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "slug"}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var urlSet sitemap.URLSet
	require.NoError(t, xml.NewDecoder(resp.Body).Decode(&urlSet))

	var categoryPaths []string
	for _, u := range urlSet.URLs {
		if strings.HasPrefix(u.Loc, "/category/") {
			categoryPaths = append(categoryPaths, u.Loc)
		}
	}
	require.Equal(t, []string{
		"/category/sci-fi",
		"/category/action",
		"/category/isekai-%C3%B1",
		"/category/slice-of-life",
	}, categoryPaths)

	for _, path := range categoryPaths {
		token, err := url.PathUnescape(strings.TrimPrefix(path, "/category/"))
		require.NoError(t, err)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM unnest(categories) AS category`)).
			WithArgs(token).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "categories"}).
				AddRow(int64(1), "Solo Leveling", "{Action}"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogUsesInjectedRenderer(t *testing.T) {
	app, mock := newTestServer(t, WithMarkdownRenderer(stubRenderer{}))

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content"}).
			AddRow(int64(1), "My Title!", "hello"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/blog/1/my-title", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "<p>stub:hello</p>")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateListEndToEnd(t *testing.T) {
	app, mock := newTestServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE title IN ($1, $2)`)).
		WithArgs("Solo Leveling", "Nonexistent Title").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "categories"}).
			AddRow(int64(1), "Solo Leveling", "{Action}"))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "List"`)).
		WithArgs("My Picks", "desc", "my-picks").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "ListManhwa"`)).
		WithArgs(int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodPost, "/create-list", strings.NewReader(
		`{"manhwa_names":["Solo Leveling","Nonexistent Title"],"list_title":"My Picks","list_description":"desc"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"list_id":5}`, string(body))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithListExtractorSelection(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	t.Setenv("LLM_PROVIDER", "")
	s := &Server{log: logrus.New()}
	require.NoError(t, WithListExtractor()(s))
	assert.Nil(t, s.extractor)

	t.Setenv("LLM_PROVIDER", "claude")
	assert.Error(t, WithListExtractor()(&Server{log: logrus.New()}))

	t.Setenv("LLM_PROVIDER", "openai")
	assert.Error(t, WithListExtractor()(&Server{log: logrus.New()}))

	t.Setenv("OPENAI_API_KEY", "sk-test")
	s = &Server{log: logrus.New()}
	require.NoError(t, WithListExtractor()(s))
	assert.NotNil(t, s.extractor)
}

func TestNewServerRequiresDatabase(t *testing.T) {
	logger := logrus.New()
	_, err := NewServer(WithFiber(NewFiber(logger, views.New())), WithLogger(logger))
	assert.Error(t, err)
}
