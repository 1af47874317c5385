package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/categories-api/internal/application/category"
	"github.com/jhoicas/categories-api/internal/application/dto"
	"github.com/jhoicas/categories-api/internal/domain/repository"
	"github.com/jhoicas/categories-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/categories-api/internal/interfaces/http"
	"github.com/jhoicas/categories-api/pkg/logger"
)

const base = "/api/v1/categories"

// buildTestApp construye la app Fiber completa sobre el almacén en memoria.
func buildTestApp(uow category.UnitOfWork) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:     "categories-test",
		APIVersion:  "v1",
		CategorySvc: category.NewService(uow),
		Logger:      logger.Nop(),
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createCategory(t *testing.T, app *fiber.App, body string) dto.CategoryResponse {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, base, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.CategoryResponse](t, resp)
}

func TestCategories_EscenarioCompleto(t *testing.T) {
	app := buildTestApp(memory.NewStore())

	a := createCategory(t, app, `{"name":"A"}`)
	assert.Equal(t, int64(1), a.ID)
	assert.Nil(t, a.ParentID)

	a1 := createCategory(t, app, `{"name":"A1","parent_id":1}`)
	assert.Equal(t, int64(2), a1.ID)

	resp := doRequest(t, app, http.MethodGet, base+"?parent_id=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	children := decode[[]dto.CategoryResponse](t, resp)
	require.Len(t, children, 1)
	assert.Equal(t, "A1", children[0].Name)

	resp = doRequest(t, app, http.MethodDelete, base+"/1", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "HAS_CHILDREN", decode[dto.ErrorResponse](t, resp).Code)

	resp = doRequest(t, app, http.MethodDelete, base+"/2", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, base+"/1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, base+"/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategories_ListRaices(t *testing.T) {
	app := buildTestApp(memory.NewStore())

	resp := doRequest(t, app, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]dto.CategoryResponse](t, resp))

	createCategory(t, app, `{"name":"A"}`)
	createCategory(t, app, `{"name":"B","parent_id":null}`)
	createCategory(t, app, `{"name":"A1","parent_id":1}`)

	resp = doRequest(t, app, http.MethodGet, base, "")
	roots := decode[[]dto.CategoryResponse](t, resp)
	require.Len(t, roots, 2)
	assert.Equal(t, "A", roots[0].Name)
	assert.Equal(t, "B", roots[1].Name)
}

func TestCategories_ListPadreInexistente(t *testing.T) {
	app := buildTestApp(memory.NewStore())

	resp := doRequest(t, app, http.MethodGet, base+"?parent_id=999", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PARENT_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCategories_ListPadreSinHijasDevuelveArrayVacio(t *testing.T) {
	app := buildTestApp(memory.NewStore())
	createCategory(t, app, `{"name":"A"}`)

	resp := doRequest(t, app, http.MethodGet, base+"?parent_id=1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `[]`, string(body))
}

func TestCategories_ListParentIDNoEntero(t *testing.T) {
	app := buildTestApp(memory.NewStore())

	resp := doRequest(t, app, http.MethodGet, base+"?parent_id=abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "INVALID_QUERY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCategories_CreatePadreInexistente(t *testing.T) {
	app := buildTestApp(memory.NewStore())

	resp := doRequest(t, app, http.MethodPost, base, `{"name":"X","parent_id":42}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PARENT_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = doRequest(t, app, http.MethodGet, base, "")
	assert.Empty(t, decode[[]dto.CategoryResponse](t, resp))
}

func TestCategories_CreateEntradaInvalida(t *testing.T) {
	app := buildTestApp(memory.NewStore())

	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"sin nombre", `{}`, http.StatusUnprocessableEntity, "VALIDATION"},
		{"nombre vacío", `{"name":""}`, http.StatusUnprocessableEntity, "VALIDATION"},
		{"nombre de espacios", `{"name":"   "}`, http.StatusUnprocessableEntity, "VALIDATION"},
		{"nombre largo", `{"name":"` + strings.Repeat("x", 101) + `"}`, http.StatusUnprocessableEntity, "VALIDATION"},
		{"campo extra", `{"name":"A","color":"red"}`, http.StatusUnprocessableEntity, "VALIDATION"},
		{"parent_id texto", `{"name":"A","parent_id":"1"}`, http.StatusUnprocessableEntity, "VALIDATION"},
		{"parent_id decimal", `{"name":"A","parent_id":1.5}`, http.StatusUnprocessableEntity, "VALIDATION"},
		{"json roto", `{"name":`, http.StatusBadRequest, "INVALID_BODY"},
		{"cuerpo vacío", ` `, http.StatusBadRequest, "INVALID_BODY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, app, http.MethodPost, base, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}
}

func TestCategories_CreateNombreDeCienCaracteres(t *testing.T) {
	app := buildTestApp(memory.NewStore())
	out := createCategory(t, app, `{"name":"`+strings.Repeat("ñ", 100)+`"}`)
	assert.Equal(t, strings.Repeat("ñ", 100), out.Name)
}

func TestCategories_GetByID(t *testing.T) {
	app := buildTestApp(memory.NewStore())
	created := createCategory(t, app, `{"name":"A"}`)

	resp := doRequest(t, app, http.MethodGet, base+"/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.CategoryResponse](t, resp)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "A", got.Name)

	resp = doRequest(t, app, http.MethodGet, base+"/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCategories_DeleteInexistente(t *testing.T) {
	app := buildTestApp(memory.NewStore())

	resp := doRequest(t, app, http.MethodDelete, base+"/77", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

type brokenUoW struct{}

func (brokenUoW) Run(ctx context.Context, fn func(repository.CategoryRepository) error) error {
	return errors.New("db caída")
}

func (brokenUoW) RunReadOnly(ctx context.Context, fn func(repository.CategoryRepository) error) error {
	return errors.New("db caída")
}

func TestCategories_FalloDePersistenciaEs500SinDetalles(t *testing.T) {
	app := buildTestApp(brokenUoW{})

	resp := doRequest(t, app, http.MethodGet, base, "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	e := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INTERNAL", e.Code)
	assert.NotContains(t, e.Message, "db caída")

	resp = doRequest(t, app, http.MethodDelete, base+"/1", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRequestLogger_PropagaYGeneraRequestID(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:     "categories-test",
		CategorySvc: category.NewService(memory.NewStore()),
		Logger:      logger.FromWriter(&buf, "info"),
	})

	req := httptest.NewRequest(http.MethodGet, base, nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(apphttp.HeaderRequestID))
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"status":200`)

	resp = doRequest(t, app, http.MethodGet, base, "")
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))
}

func TestRouter_HealthYPaginaDeInicio(t *testing.T) {
	app := buildTestApp(memory.NewStore())

	resp := doRequest(t, app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	health := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "categories-test", health["service"])

	resp = doRequest(t, app, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "/api/v1/categories")
}
