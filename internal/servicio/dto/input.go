package dto

type CreateServicioInput struct {
	Nombre       string  `json:"nombre" validate:"required,min=1,max=300"`
	Descripcion  *string `json:"descripcion"`
	Activo       *bool   `json:"activo"` // Defaults to true when omitted
	CategoriaIDs []int64 `json:"categoria_ids"`
}

// UpdateServicioInput carries a partial update: nil fields are left untouched.
// A non-nil CategoriaIDs, even empty, replaces the whole association set.
type UpdateServicioInput struct {
	Nombre       *string  `json:"nombre" validate:"omitempty,min=1,max=300"`
	Descripcion  *string  `json:"descripcion"`
	Activo       *bool    `json:"activo"`
	CategoriaIDs *[]int64 `json:"categoria_ids"`
}
