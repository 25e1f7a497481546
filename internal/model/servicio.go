package model

type Servicio struct {
	BaseModel
	Nombre      string  `db:"nombre"`
	Descripcion *string `db:"descripcion"` // Nullable
	Activo      bool    `db:"activo"`

	// Categorias assigned through servicio_categorias, joined data.
	Categorias []Categoria `db:"-"`
}
