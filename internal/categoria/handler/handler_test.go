package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serviapp/catalog-service/internal/apperr"
	"github.com/serviapp/catalog-service/internal/categoria/dto"
	"github.com/serviapp/catalog-service/internal/model"
	"github.com/serviapp/catalog-service/pkg/logger"
)

// fakeUC serves canned state so the tests exercise only the HTTP mapping.
type fakeUC struct {
	cats      map[int64]*model.Categoria
	children  map[int64][]model.Categoria
	createErr error
	updateErr error
	deleted   bool
	total     int64
}

func (f *fakeUC) List(_ context.Context, _ *dto.CategoriaFilters) ([]model.Categoria, error) {
	out := []model.Categoria{}
	for _, c := range f.cats {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeUC) GetByID(_ context.Context, id int64) (*model.Categoria, error) {
	c, ok := f.cats[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeUC) GetByNombre(_ context.Context, _ string) (*model.Categoria, error) {
	return nil, nil
}

func (f *fakeUC) GetSubcategorias(_ context.Context, parentID int64) ([]model.Categoria, error) {
	return f.children[parentID], nil
}

func (f *fakeUC) GetTree(_ context.Context, _ bool) ([]model.Categoria, error) {
	out := []model.Categoria{}
	for _, c := range f.cats {
		if c.CategoriaPadreID == nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeUC) Create(_ context.Context, input *dto.CreateCategoriaInput) (*model.Categoria, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Categoria{BaseModel: model.BaseModel{ID: 1}, Nombre: input.Nombre, Activo: true}, nil
}

func (f *fakeUC) Update(_ context.Context, id int64, _ *dto.UpdateCategoriaInput) (*model.Categoria, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	c, ok := f.cats[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeUC) ToggleActivo(_ context.Context, id int64) (*model.Categoria, error) {
	c, ok := f.cats[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (f *fakeUC) Delete(_ context.Context, id int64) (bool, error) {
	_, ok := f.cats[id]
	if ok {
		f.deleted = true
	}
	return ok, nil
}

func (f *fakeUC) Count(_ context.Context, _ bool) (int64, error) {
	return f.total, nil
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

func newHandler(uc *fakeUC) *CategoriaHandler {
	return NewCategoriaHandler(uc, logger.New(&logger.Config{Level: "error"}))
}

func request(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req
}

func TestGetCategoriaNotFound(t *testing.T) {
	h := newHandler(&fakeUC{cats: map[int64]*model.Categoria{}})
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(request(http.MethodGet, "/api/v1/categorias/7", ""), rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "7")
}

func TestGetCategoriaInvalidID(t *testing.T) {
	h := newHandler(&fakeUC{cats: map[int64]*model.Categoria{}})
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(request(http.MethodGet, "/api/v1/categorias/abc", ""), rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCategoriaCreated(t *testing.T) {
	h := newHandler(&fakeUC{})
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(request(http.MethodPost, "/api/v1/categorias", `{"nombre":"Electronics"}`), rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body dto.CategoriaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Electronics", body.Nombre)
	assert.NotNil(t, body.Subcategorias, "subcategorias serializes as [], not null")
}

func TestCreateCategoriaValidationConflict(t *testing.T) {
	h := newHandler(&fakeUC{
		createErr: apperr.Validationf("nombre", "ya existe una categoría con el nombre 'X'"),
	})
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(request(http.MethodPost, "/api/v1/categorias", `{"nombre":"X"}`), rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["detail"], "ya existe")
}

func TestCreateCategoriaMissingNombre(t *testing.T) {
	h := newHandler(&fakeUC{})
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(request(http.MethodPost, "/api/v1/categorias", `{}`), rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCategoriaWithChildren(t *testing.T) {
	uc := &fakeUC{
		cats: map[int64]*model.Categoria{
			1: {BaseModel: model.BaseModel{ID: 1}, Nombre: "A", Activo: true},
		},
		children: map[int64][]model.Categoria{
			1: {{BaseModel: model.BaseModel{ID: 2}, Nombre: "A1", Activo: true}},
		},
	}
	h := newHandler(uc)
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(request(http.MethodDelete, "/api/v1/categorias/1", ""), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, uc.deleted, "delete must not reach the usecase")
}

func TestDeleteCategoriaNoContent(t *testing.T) {
	uc := &fakeUC{
		cats: map[int64]*model.Categoria{
			1: {BaseModel: model.BaseModel{ID: 1}, Nombre: "A", Activo: true},
		},
	}
	h := newHandler(uc)
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(request(http.MethodDelete, "/api/v1/categorias/1", ""), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, uc.deleted)
}

func TestDeleteCategoriaNotFound(t *testing.T) {
	h := newHandler(&fakeUC{cats: map[int64]*model.Categoria{}})
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(request(http.MethodDelete, "/api/v1/categorias/9", ""), rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCountCategorias(t *testing.T) {
	h := newHandler(&fakeUC{total: 5})
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(request(http.MethodGet, "/api/v1/categorias/count?solo_activos=true", ""), rec)

	require.NoError(t, h.Count(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body["total"])
}

func TestUpdateCategoriaNotFound(t *testing.T) {
	h := newHandler(&fakeUC{cats: map[int64]*model.Categoria{}})
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(request(http.MethodPut, "/api/v1/categorias/3", `{"activo":false}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubcategoriasParentNotFound(t *testing.T) {
	h := newHandler(&fakeUC{cats: map[int64]*model.Categoria{}})
	e := newEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(request(http.MethodGet, "/api/v1/categorias/5/subcategorias", ""), rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, h.Subcategorias(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
