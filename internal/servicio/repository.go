package servicio

import (
	"context"

	"github.com/serviapp/catalog-service/internal/model"
	"github.com/serviapp/catalog-service/internal/servicio/dto"
)

type Repository interface {
	// Create persists the servicio and its association rows in one transaction.
	Create(ctx context.Context, s *model.Servicio, categoriaIDs []int64) error
	FindByID(ctx context.Context, id int64) (*model.Servicio, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Servicio, error)
	FindAll(ctx context.Context, filters *dto.ServicioFilters) ([]model.Servicio, error)
	// Update rewrites the scalar columns; when replaceCategorias is true the
	// association set is swapped for categoriaIDs atomically.
	Update(ctx context.Context, s *model.Servicio, categoriaIDs []int64, replaceCategorias bool) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context, soloActivos bool) (int64, error)
}
