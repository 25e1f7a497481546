package usecase

import (
	"context"

	"github.com/serviapp/catalog-service/internal/apperr"
	"github.com/serviapp/catalog-service/internal/categoria"
	"github.com/serviapp/catalog-service/internal/model"
	"github.com/serviapp/catalog-service/internal/servicio"
	"github.com/serviapp/catalog-service/internal/servicio/dto"
	"github.com/serviapp/catalog-service/pkg/logger"
)

type servicioUseCase struct {
	repo    servicio.Repository
	catRepo categoria.Repository
	logger  *logger.Logger
}

func NewServicioUseCase(repo servicio.Repository, catRepo categoria.Repository, log *logger.Logger) servicio.UseCase {
	return &servicioUseCase{
		repo:    repo,
		catRepo: catRepo,
		logger:  log,
	}
}

func (uc *servicioUseCase) List(ctx context.Context, filters *dto.ServicioFilters) ([]model.Servicio, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *servicioUseCase) GetByID(ctx context.Context, id int64) (*model.Servicio, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *servicioUseCase) GetByNombre(ctx context.Context, nombre string) (*model.Servicio, error) {
	return uc.repo.FindByNombre(ctx, nombre)
}

func (uc *servicioUseCase) Create(ctx context.Context, input *dto.CreateServicioInput) (*model.Servicio, error) {
	existente, err := uc.repo.FindByNombre(ctx, input.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, apperr.Validationf("nombre", "ya existe un servicio con el nombre '%s'", input.Nombre)
	}

	if err := uc.validateCategorias(ctx, input.CategoriaIDs); err != nil {
		return nil, err
	}

	activo := true
	if input.Activo != nil {
		activo = *input.Activo
	}

	s := &model.Servicio{
		Nombre:      input.Nombre,
		Descripcion: input.Descripcion,
		Activo:      activo,
	}
	if err := uc.repo.Create(ctx, s, input.CategoriaIDs); err != nil {
		return nil, err
	}

	return uc.repo.FindByID(ctx, s.ID)
}

func (uc *servicioUseCase) Update(ctx context.Context, id int64, input *dto.UpdateServicioInput) (*model.Servicio, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	if input.Nombre != nil && *input.Nombre != s.Nombre {
		existente, err := uc.repo.FindByNombre(ctx, *input.Nombre)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, apperr.Validationf("nombre", "ya existe un servicio con el nombre '%s'", *input.Nombre)
		}
	}

	// The whole update aborts if any supplied categoria is unknown, so the
	// existing association set stays intact on failure.
	replaceCategorias := input.CategoriaIDs != nil
	var categoriaIDs []int64
	if replaceCategorias {
		categoriaIDs = *input.CategoriaIDs
		if err := uc.validateCategorias(ctx, categoriaIDs); err != nil {
			return nil, err
		}
	}

	if input.Nombre != nil {
		s.Nombre = *input.Nombre
	}
	if input.Descripcion != nil {
		s.Descripcion = input.Descripcion
	}
	if input.Activo != nil {
		s.Activo = *input.Activo
	}

	if err := uc.repo.Update(ctx, s, categoriaIDs, replaceCategorias); err != nil {
		return nil, err
	}
	return uc.repo.FindByID(ctx, id)
}

func (uc *servicioUseCase) ToggleActivo(ctx context.Context, id int64) (*model.Servicio, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}

	s.Activo = !s.Activo
	if err := uc.repo.Update(ctx, s, nil, false); err != nil {
		return nil, err
	}
	return uc.repo.FindByID(ctx, id)
}

func (uc *servicioUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func (uc *servicioUseCase) Count(ctx context.Context, soloActivos bool) (int64, error) {
	return uc.repo.Count(ctx, soloActivos)
}

// validateCategorias checks each id individually, reporting the first unknown one.
func (uc *servicioUseCase) validateCategorias(ctx context.Context, categoriaIDs []int64) error {
	for _, catID := range categoriaIDs {
		cat, err := uc.catRepo.FindByID(ctx, catID)
		if err != nil {
			return err
		}
		if cat == nil {
			return apperr.Validationf("categoria_ids", "categoría con ID %d no encontrada", catID)
		}
	}
	return nil
}
