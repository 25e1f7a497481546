package usecase

import (
	"context"

	"github.com/serviapp/catalog-service/internal/apperr"
	"github.com/serviapp/catalog-service/internal/categoria"
	"github.com/serviapp/catalog-service/internal/categoria/dto"
	"github.com/serviapp/catalog-service/internal/model"
	"github.com/serviapp/catalog-service/pkg/logger"
)

// treeLimit caps the number of roots returned by GetTree.
const treeLimit = 1000

type categoriaUseCase struct {
	repo   categoria.Repository
	logger *logger.Logger
}

func NewCategoriaUseCase(repo categoria.Repository, log *logger.Logger) categoria.UseCase {
	return &categoriaUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoriaUseCase) List(ctx context.Context, filters *dto.CategoriaFilters) ([]model.Categoria, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *categoriaUseCase) GetByID(ctx context.Context, id int64) (*model.Categoria, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *categoriaUseCase) GetByNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	return uc.repo.FindByNombre(ctx, nombre)
}

func (uc *categoriaUseCase) GetSubcategorias(ctx context.Context, parentID int64) ([]model.Categoria, error) {
	return uc.repo.FindChildren(ctx, parentID)
}

// GetTree loads the whole table once and assembles the full subtree of every
// root in memory. The activo filter applies to root selection only: inactive
// descendants stay visible under an active root.
func (uc *categoriaUseCase) GetTree(ctx context.Context, soloActivos bool) ([]model.Categoria, error) {
	all, err := uc.repo.FindAllFlat(ctx)
	if err != nil {
		return nil, err
	}

	children := make(map[int64][]int, len(all))
	for i := range all {
		if all[i].CategoriaPadreID != nil {
			pid := *all[i].CategoriaPadreID
			children[pid] = append(children[pid], i)
		}
	}

	var attach func(node *model.Categoria)
	attach = func(node *model.Categoria) {
		idxs := children[node.ID]
		node.Subcategorias = make([]model.Categoria, 0, len(idxs))
		for _, i := range idxs {
			child := all[i]
			attach(&child)
			node.Subcategorias = append(node.Subcategorias, child)
		}
	}

	roots := make([]model.Categoria, 0)
	for i := range all {
		if all[i].CategoriaPadreID != nil {
			continue
		}
		if soloActivos && !all[i].Activo {
			continue
		}
		root := all[i]
		attach(&root)
		roots = append(roots, root)
		if len(roots) == treeLimit {
			break
		}
	}
	return roots, nil
}

func (uc *categoriaUseCase) Create(ctx context.Context, input *dto.CreateCategoriaInput) (*model.Categoria, error) {
	existente, err := uc.repo.FindByNombre(ctx, input.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, apperr.Validationf("nombre", "ya existe una categoría con el nombre '%s'", input.Nombre)
	}

	if input.CategoriaPadreID != nil {
		padre, err := uc.repo.FindByID(ctx, *input.CategoriaPadreID)
		if err != nil {
			return nil, err
		}
		if padre == nil {
			return nil, apperr.Validationf("categoria_padre_id", "categoría padre con ID %d no encontrada", *input.CategoriaPadreID)
		}
	}

	activo := true
	if input.Activo != nil {
		activo = *input.Activo
	}

	c := &model.Categoria{
		Nombre:           input.Nombre,
		Descripcion:      input.Descripcion,
		Icono:            input.Icono,
		Activo:           activo,
		CategoriaPadreID: input.CategoriaPadreID,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return uc.repo.FindByID(ctx, c.ID)
}

func (uc *categoriaUseCase) Update(ctx context.Context, id int64, input *dto.UpdateCategoriaInput) (*model.Categoria, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	if input.Nombre != nil && *input.Nombre != c.Nombre {
		existente, err := uc.repo.FindByNombre(ctx, *input.Nombre)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, apperr.Validationf("nombre", "ya existe una categoría con el nombre '%s'", *input.Nombre)
		}
	}

	if input.CategoriaPadreID != nil {
		if err := uc.validateParent(ctx, id, *input.CategoriaPadreID); err != nil {
			return nil, err
		}
	}

	if input.Nombre != nil {
		c.Nombre = *input.Nombre
	}
	if input.Descripcion != nil {
		c.Descripcion = input.Descripcion
	}
	if input.Icono != nil {
		c.Icono = input.Icono
	}
	if input.Activo != nil {
		c.Activo = *input.Activo
	}
	if input.CategoriaPadreID != nil {
		c.CategoriaPadreID = input.CategoriaPadreID
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.repo.FindByID(ctx, id)
}

// validateParent rejects a missing parent, direct self-parenting and longer
// cycles: the ancestor chain of the proposed parent must not pass through id.
func (uc *categoriaUseCase) validateParent(ctx context.Context, id, padreID int64) error {
	if padreID == id {
		return apperr.Validationf("categoria_padre_id", "una categoría no puede ser su propia categoría padre")
	}

	padre, err := uc.repo.FindByID(ctx, padreID)
	if err != nil {
		return err
	}
	if padre == nil {
		return apperr.Validationf("categoria_padre_id", "categoría padre con ID %d no encontrada", padreID)
	}

	visitados := map[int64]bool{padre.ID: true}
	for ancestro := padre; ancestro != nil && ancestro.CategoriaPadreID != nil; {
		next := *ancestro.CategoriaPadreID
		if next == id {
			return apperr.Validationf("categoria_padre_id", "la categoría padre con ID %d crearía un ciclo", padreID)
		}
		if visitados[next] {
			break
		}
		visitados[next] = true
		ancestro, err = uc.repo.FindByID(ctx, next)
		if err != nil {
			return err
		}
	}
	return nil
}

func (uc *categoriaUseCase) ToggleActivo(ctx context.Context, id int64) (*model.Categoria, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	c.Activo = !c.Activo
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return uc.repo.FindByID(ctx, id)
}

func (uc *categoriaUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

func (uc *categoriaUseCase) Count(ctx context.Context, soloActivos bool) (int64, error) {
	return uc.repo.Count(ctx, soloActivos)
}
