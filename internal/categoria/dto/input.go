package dto

type CreateCategoriaInput struct {
	Nombre           string  `json:"nombre" validate:"required,min=1,max=150"`
	Descripcion      *string `json:"descripcion" validate:"omitempty,max=1000"`
	Icono            *string `json:"icono" validate:"omitempty,max=700"`
	Activo           *bool   `json:"activo"` // Defaults to true when omitted
	CategoriaPadreID *int64  `json:"categoria_padre_id"`
}

// UpdateCategoriaInput carries a partial update: nil fields are left untouched.
type UpdateCategoriaInput struct {
	Nombre           *string `json:"nombre" validate:"omitempty,min=1,max=150"`
	Descripcion      *string `json:"descripcion" validate:"omitempty,max=1000"`
	Icono            *string `json:"icono" validate:"omitempty,max=700"`
	Activo           *bool   `json:"activo"`
	CategoriaPadreID *int64  `json:"categoria_padre_id"`
}
