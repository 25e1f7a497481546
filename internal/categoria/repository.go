package categoria

import (
	"context"

	"github.com/serviapp/catalog-service/internal/categoria/dto"
	"github.com/serviapp/catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, c *model.Categoria) error
	FindByID(ctx context.Context, id int64) (*model.Categoria, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	FindAll(ctx context.Context, filters *dto.CategoriaFilters) ([]model.Categoria, error)
	FindChildren(ctx context.Context, parentID int64) ([]model.Categoria, error)
	FindAllFlat(ctx context.Context) ([]model.Categoria, error)
	Update(ctx context.Context, c *model.Categoria) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context, soloActivos bool) (int64, error)
}
