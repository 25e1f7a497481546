package categoria

import (
	"context"

	"github.com/serviapp/catalog-service/internal/categoria/dto"
	"github.com/serviapp/catalog-service/internal/model"
)

// UseCase implements the Categoria lifecycle rules. Lookups report a missing
// entity as a nil result; mutation preconditions fail with *apperr.ValidationError.
type UseCase interface {
	List(ctx context.Context, filters *dto.CategoriaFilters) ([]model.Categoria, error)
	GetByID(ctx context.Context, id int64) (*model.Categoria, error)
	GetByNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	GetSubcategorias(ctx context.Context, parentID int64) ([]model.Categoria, error)
	GetTree(ctx context.Context, soloActivos bool) ([]model.Categoria, error)
	Create(ctx context.Context, input *dto.CreateCategoriaInput) (*model.Categoria, error)
	Update(ctx context.Context, id int64, input *dto.UpdateCategoriaInput) (*model.Categoria, error)
	ToggleActivo(ctx context.Context, id int64) (*model.Categoria, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context, soloActivos bool) (int64, error)
}
