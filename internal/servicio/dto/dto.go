package dto

import (
	"time"

	catdto "github.com/serviapp/catalog-service/internal/categoria/dto"
	"github.com/serviapp/catalog-service/internal/model"
)

type ServicioFilters struct {
	Skip        int
	Limit       int
	SoloActivos bool
	CategoriaID *int64
}

type ServicioResponse struct {
	ID          int64                    `json:"id"`
	Nombre      string                   `json:"nombre"`
	Descripcion *string                  `json:"descripcion"`
	Activo      bool                     `json:"activo"`
	Categorias  []catdto.CategoriaSimple `json:"categorias"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

type ServicioSimple struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Activo bool   `json:"activo"`
}

func NewServicioResponse(m *model.Servicio) ServicioResponse {
	resp := ServicioResponse{
		ID:          m.ID,
		Nombre:      m.Nombre,
		Descripcion: m.Descripcion,
		Activo:      m.Activo,
		Categorias:  make([]catdto.CategoriaSimple, 0, len(m.Categorias)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for i := range m.Categorias {
		resp.Categorias = append(resp.Categorias, catdto.NewCategoriaSimple(&m.Categorias[i]))
	}
	return resp
}

func NewServicioResponseList(ms []model.Servicio) []ServicioResponse {
	out := make([]ServicioResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewServicioResponse(&ms[i]))
	}
	return out
}

func NewServicioSimple(m *model.Servicio) ServicioSimple {
	return ServicioSimple{
		ID:     m.ID,
		Nombre: m.Nombre,
		Activo: m.Activo,
	}
}
