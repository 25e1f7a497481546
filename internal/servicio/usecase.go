package servicio

import (
	"context"

	"github.com/serviapp/catalog-service/internal/model"
	"github.com/serviapp/catalog-service/internal/servicio/dto"
)

type UseCase interface {
	List(ctx context.Context, filters *dto.ServicioFilters) ([]model.Servicio, error)
	GetByID(ctx context.Context, id int64) (*model.Servicio, error)
	GetByNombre(ctx context.Context, nombre string) (*model.Servicio, error)
	Create(ctx context.Context, input *dto.CreateServicioInput) (*model.Servicio, error)
	Update(ctx context.Context, id int64, input *dto.UpdateServicioInput) (*model.Servicio, error)
	ToggleActivo(ctx context.Context, id int64) (*model.Servicio, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context, soloActivos bool) (int64, error)
}
