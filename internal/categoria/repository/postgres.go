package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/serviapp/catalog-service/internal/categoria/dto"
	"github.com/serviapp/catalog-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Categoria) error {
	query := `
        INSERT INTO categorias (nombre, descripcion, icono, activo, categoria_padre_id)
        VALUES (:nombre, :descripcion, :icono, :activo, :categoria_padre_id)
        RETURNING id, created_at, updated_at
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, c)
	if err != nil {
		return errors.Wrap(err, "error while insert categoria")
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return errors.Wrap(err, "error while insert categoria. Scan")
		}
	}
	return rows.Err()
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Categoria, error) {
	var c model.Categoria
	query := `SELECT * FROM categorias WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error while getting categoria")
	}

	if err := r.loadRelations(ctx, []*model.Categoria{&c}); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) FindByNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	query := `SELECT * FROM categorias WHERE nombre = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &c, query, nombre)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error while getting categoria by nombre")
	}
	return &c, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.CategoriaFilters) ([]model.Categoria, error) {
	var categorias []model.Categoria

	conditions := []string{}
	if f.SoloActivos {
		conditions = append(conditions, "activo = TRUE")
	}
	if f.SoloRaiz {
		conditions = append(conditions, "categoria_padre_id IS NULL")
	}

	query := "SELECT * FROM categorias"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY nombre ASC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Skip)
	}

	if err := r.DB.SelectContext(ctx, &categorias, query); err != nil {
		return nil, errors.Wrap(err, "error while listing categorias")
	}

	refs := make([]*model.Categoria, len(categorias))
	for i := range categorias {
		refs[i] = &categorias[i]
	}
	if err := r.loadRelations(ctx, refs); err != nil {
		return nil, err
	}
	return categorias, nil
}

func (r *PGRepository) FindChildren(ctx context.Context, parentID int64) ([]model.Categoria, error) {
	categorias := []model.Categoria{}
	query := `SELECT * FROM categorias WHERE categoria_padre_id = $1 ORDER BY nombre ASC`
	if err := r.DB.SelectContext(ctx, &categorias, query, parentID); err != nil {
		return nil, errors.Wrap(err, "error while getting subcategorias")
	}

	refs := make([]*model.Categoria, len(categorias))
	for i := range categorias {
		refs[i] = &categorias[i]
	}
	if err := r.loadRelations(ctx, refs); err != nil {
		return nil, err
	}
	return categorias, nil
}

// FindAllFlat returns every row without relations, for in-memory tree assembly.
func (r *PGRepository) FindAllFlat(ctx context.Context) ([]model.Categoria, error) {
	categorias := []model.Categoria{}
	query := `SELECT * FROM categorias ORDER BY nombre ASC`
	if err := r.DB.SelectContext(ctx, &categorias, query); err != nil {
		return nil, errors.Wrap(err, "error while getting categorias flat")
	}
	return categorias, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Categoria) error {
	query := `
        UPDATE categorias
        SET nombre = :nombre,
            descripcion = :descripcion,
            icono = :icono,
            activo = :activo,
            categoria_padre_id = :categoria_padre_id,
            updated_at = now()
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	if err != nil {
		return errors.Wrap(err, "error while update categoria")
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM categorias WHERE id = $1", id)
	if err != nil {
		return false, errors.Wrap(err, "error while delete categoria")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "error while delete categoria. RowsAffected")
	}
	return n > 0, nil
}

func (r *PGRepository) Count(ctx context.Context, soloActivos bool) (int64, error) {
	var count int64
	query := "SELECT count(*) FROM categorias"
	if soloActivos {
		query += " WHERE activo = TRUE"
	}
	if err := r.DB.GetContext(ctx, &count, query); err != nil {
		return 0, errors.Wrap(err, "error while counting categorias")
	}
	return count, nil
}

// loadRelations populates Padre and the direct Subcategorias for each entry
// with two batched queries instead of one round trip per row.
func (r *PGRepository) loadRelations(ctx context.Context, categorias []*model.Categoria) error {
	if len(categorias) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(categorias))
	parentIDs := make([]int64, 0, len(categorias))
	for _, c := range categorias {
		ids = append(ids, c.ID)
		if c.CategoriaPadreID != nil {
			parentIDs = append(parentIDs, *c.CategoriaPadreID)
		}
	}

	children := map[int64][]model.Categoria{}
	rows := []model.Categoria{}
	query := `SELECT * FROM categorias WHERE categoria_padre_id = ANY ($1) ORDER BY nombre ASC`
	if err := r.DB.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return errors.Wrap(err, "error while getting categorias childs")
	}
	for _, row := range rows {
		children[*row.CategoriaPadreID] = append(children[*row.CategoriaPadreID], row)
	}

	parents := map[int64]model.Categoria{}
	if len(parentIDs) > 0 {
		parentRows := []model.Categoria{}
		query = `SELECT * FROM categorias WHERE id = ANY ($1)`
		if err := r.DB.SelectContext(ctx, &parentRows, query, pq.Array(parentIDs)); err != nil {
			return errors.Wrap(err, "error while getting categorias padres")
		}
		for _, row := range parentRows {
			parents[row.ID] = row
		}
	}

	for _, c := range categorias {
		c.Subcategorias = children[c.ID]
		if c.CategoriaPadreID != nil {
			if padre, ok := parents[*c.CategoriaPadreID]; ok {
				p := padre
				c.Padre = &p
			}
		}
	}
	return nil
}
