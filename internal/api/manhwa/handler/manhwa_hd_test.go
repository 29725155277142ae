package manhwaHandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ManhwaCatalog/internal/api/manhwa"
	"ManhwaCatalog/internal/middleware"
	"ManhwaCatalog/internal/views"
	"ManhwaCatalog/pkg/response"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	all      []manhwa.ManhwaResponse
	search   []manhwa.ManhwaResponse
	category []manhwa.ManhwaResponse
	err      error

	requested []string
}

func (f *fakeService) GetAllManhwas(context.Context) ([]manhwa.ManhwaResponse, error) {
	return f.all, f.err
}

func (f *fakeService) SearchManhwas(_ context.Context, title string) ([]manhwa.ManhwaResponse, error) {
	if strings.TrimSpace(title) == "" {
		return nil, manhwa.ErrTitleRequired
	}
	return f.search, f.err
}

func (f *fakeService) GetManhwasByCategory(_ context.Context, category string) ([]manhwa.ManhwaResponse, error) {
	f.requested = append(f.requested, category)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.category) == 0 {
		return nil, manhwa.ErrCategoryNotFound
	}
	return f.category, nil
}

func newTestApp(svc *fakeService) *fiber.App {
	logger := logrus.New()
	app := fiber.New(fiber.Config{Views: views.New()})
	New(logger, middleware.New(logger), svc).Start(app)
	return app
}

func TestSearchRequiresTitle(t *testing.T) {
	app := newTestApp(&fakeService{})

	for _, target := range []string{"/api/search", "/api/search?title=", "/api/search?title=%20%20"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, target)

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"Title parameter is required"}`, string(body))
	}
}

func TestSearchReturnsJSONArray(t *testing.T) {
	app := newTestApp(&fakeService{search: []manhwa.ManhwaResponse{
		{ID: 1, Title: "Solo Leveling", Categories: []string{"Action"}},
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/search?title=solo", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []manhwa.ManhwaResponse
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Solo Leveling", got[0].Title)
}

func TestSearchEmptyResultIsEmptyArray(t *testing.T) {
	app := newTestApp(&fakeService{search: []manhwa.ManhwaResponse{}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/search?title=zzz", nil), -1)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))
}

func TestSearchStoreFailureCarriesCause(t *testing.T) {
	app := newTestApp(&fakeService{err: response.NewError(http.StatusInternalServerError, "failed to load manhwa: timeout")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/search?title=solo", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "timeout")
}

func TestIndexRendersCatalog(t *testing.T) {
	app := newTestApp(&fakeService{all: []manhwa.ManhwaResponse{
		{ID: 1, Title: "Solo Leveling", Categories: []string{"Slice of Life"}},
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Solo Leveling")
	assert.Contains(t, string(body), `href="/category/slice-of-life"`)
}

func TestCategoryRendersMatches(t *testing.T) {
	svc := &fakeService{category: []manhwa.ManhwaResponse{
		{ID: 3, Title: "Lore Olympus", Categories: []string{"Slice of Life", "Romance"}},
		{ID: 4, Title: "True Beauty", Categories: []string{"Slice of Life"}},
	}}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/category/slice-of-life", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"slice-of-life"}, svc.requested)

	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	assert.Contains(t, page, "Category: slice-of-life")
	assert.Contains(t, page, "Lore Olympus")
	assert.Contains(t, page, "True Beauty")
	assert.Contains(t, page, `href="/category/romance"`)
	assert.NotContains(t, page, "No manhwa yet.")
}

func TestUnknownCategoryRendersNotFound(t *testing.T) {
	app := newTestApp(&fakeService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/category/horror", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Page not found")
}
