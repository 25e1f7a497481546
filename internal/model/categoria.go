package model

type Categoria struct {
	BaseModel
	Nombre           string  `db:"nombre"`
	Descripcion      *string `db:"descripcion"` // Nullable
	Icono            *string `db:"icono"`       // Nullable
	Activo           bool    `db:"activo"`
	CategoriaPadreID *int64  `db:"categoria_padre_id"` // Nullable

	// Derived relations, always loaded via queries, never authoritative.
	Padre         *Categoria  `db:"-"`
	Subcategorias []Categoria `db:"-"`
}
