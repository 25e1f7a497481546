package dto

import (
	"time"

	"github.com/serviapp/catalog-service/internal/model"
)

type CategoriaFilters struct {
	Skip        int
	Limit       int
	SoloActivos bool
	SoloRaiz    bool
}

// CategoriaSimple is the flat projection embedded in related entities,
// breaking the recursion of the full response shape.
type CategoriaSimple struct {
	ID     int64   `json:"id"`
	Nombre string  `json:"nombre"`
	Icono  *string `json:"icono"`
	Activo bool    `json:"activo"`
}

type CategoriaResponse struct {
	ID               int64             `json:"id"`
	Nombre           string            `json:"nombre"`
	Descripcion      *string           `json:"descripcion"`
	Icono            *string           `json:"icono"`
	Activo           bool              `json:"activo"`
	CategoriaPadreID *int64            `json:"categoria_padre_id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	CategoriaPadre   *CategoriaSimple  `json:"categoria_padre"`
	Subcategorias    []CategoriaSimple `json:"subcategorias"`
}

type CategoriaTree struct {
	ID            int64           `json:"id"`
	Nombre        string          `json:"nombre"`
	Icono         *string         `json:"icono"`
	Activo        bool            `json:"activo"`
	Descripcion   *string         `json:"descripcion"`
	Subcategorias []CategoriaTree `json:"subcategorias"`
}

func NewCategoriaSimple(m *model.Categoria) CategoriaSimple {
	return CategoriaSimple{
		ID:     m.ID,
		Nombre: m.Nombre,
		Icono:  m.Icono,
		Activo: m.Activo,
	}
}

func NewCategoriaResponse(m *model.Categoria) CategoriaResponse {
	resp := CategoriaResponse{
		ID:               m.ID,
		Nombre:           m.Nombre,
		Descripcion:      m.Descripcion,
		Icono:            m.Icono,
		Activo:           m.Activo,
		CategoriaPadreID: m.CategoriaPadreID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		Subcategorias:    make([]CategoriaSimple, 0, len(m.Subcategorias)),
	}
	if m.Padre != nil {
		padre := NewCategoriaSimple(m.Padre)
		resp.CategoriaPadre = &padre
	}
	for i := range m.Subcategorias {
		resp.Subcategorias = append(resp.Subcategorias, NewCategoriaSimple(&m.Subcategorias[i]))
	}
	return resp
}

func NewCategoriaResponseList(ms []model.Categoria) []CategoriaResponse {
	out := make([]CategoriaResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewCategoriaResponse(&ms[i]))
	}
	return out
}

func NewCategoriaTree(m *model.Categoria) CategoriaTree {
	node := CategoriaTree{
		ID:            m.ID,
		Nombre:        m.Nombre,
		Icono:         m.Icono,
		Activo:        m.Activo,
		Descripcion:   m.Descripcion,
		Subcategorias: make([]CategoriaTree, 0, len(m.Subcategorias)),
	}
	for i := range m.Subcategorias {
		node.Subcategorias = append(node.Subcategorias, NewCategoriaTree(&m.Subcategorias[i]))
	}
	return node
}

func NewCategoriaTreeList(ms []model.Categoria) []CategoriaTree {
	out := make([]CategoriaTree, 0, len(ms))
	for i := range ms {
		out = append(out, NewCategoriaTree(&ms[i]))
	}
	return out
}
