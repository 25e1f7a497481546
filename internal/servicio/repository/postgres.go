package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/serviapp/catalog-service/internal/model"
	"github.com/serviapp/catalog-service/internal/servicio/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Servicio, categoriaIDs []int64) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "error while begin tx")
	}
	defer tx.Rollback()

	query := `
        INSERT INTO servicios (nombre, descripcion, activo)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at
    `
	err = tx.QueryRowxContext(ctx, query, s.Nombre, s.Descripcion, s.Activo).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "error while insert servicio")
	}

	if err := insertCategorias(ctx, tx, s.ID, categoriaIDs); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "error while commit servicio create")
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Servicio, error) {
	var s model.Servicio
	query := `SELECT * FROM servicios WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error while getting servicio")
	}

	if err := r.loadCategorias(ctx, []*model.Servicio{&s}); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindByNombre(ctx context.Context, nombre string) (*model.Servicio, error) {
	var s model.Servicio
	query := `SELECT * FROM servicios WHERE nombre = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &s, query, nombre)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "error while getting servicio by nombre")
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ServicioFilters) ([]model.Servicio, error) {
	var servicios []model.Servicio

	conditions := []string{}
	args := []interface{}{}

	query := "SELECT s.* FROM servicios s"
	if f.CategoriaID != nil {
		args = append(args, *f.CategoriaID)
		query += fmt.Sprintf(
			" JOIN servicio_categorias sc ON sc.servicio_id = s.id AND sc.categoria_id = $%d",
			len(args),
		)
	}
	if f.SoloActivos {
		conditions = append(conditions, "s.activo = TRUE")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.nombre ASC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Skip)
	}

	if err := r.DB.SelectContext(ctx, &servicios, query, args...); err != nil {
		return nil, errors.Wrap(err, "error while listing servicios")
	}

	refs := make([]*model.Servicio, len(servicios))
	for i := range servicios {
		refs[i] = &servicios[i]
	}
	if err := r.loadCategorias(ctx, refs); err != nil {
		return nil, err
	}
	return servicios, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.Servicio, categoriaIDs []int64, replaceCategorias bool) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "error while begin tx")
	}
	defer tx.Rollback()

	query := `
        UPDATE servicios
        SET nombre = $2,
            descripcion = $3,
            activo = $4,
            updated_at = now()
        WHERE id = $1
    `
	if _, err := tx.ExecContext(ctx, query, s.ID, s.Nombre, s.Descripcion, s.Activo); err != nil {
		return errors.Wrap(err, "error while update servicio")
	}

	if replaceCategorias {
		if _, err := tx.ExecContext(ctx, "DELETE FROM servicio_categorias WHERE servicio_id = $1", s.ID); err != nil {
			return errors.Wrap(err, "error while delete servicio categorias")
		}
		if err := insertCategorias(ctx, tx, s.ID, categoriaIDs); err != nil {
			return err
		}
	}

	return errors.Wrap(tx.Commit(), "error while commit servicio update")
}

func (r *PGRepository) Delete(ctx context.Context, id int64) (bool, error) {
	// Association rows go away through ON DELETE CASCADE.
	res, err := r.DB.ExecContext(ctx, "DELETE FROM servicios WHERE id = $1", id)
	if err != nil {
		return false, errors.Wrap(err, "error while delete servicio")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "error while delete servicio. RowsAffected")
	}
	return n > 0, nil
}

func (r *PGRepository) Count(ctx context.Context, soloActivos bool) (int64, error) {
	var count int64
	query := "SELECT count(*) FROM servicios"
	if soloActivos {
		query += " WHERE activo = TRUE"
	}
	if err := r.DB.GetContext(ctx, &count, query); err != nil {
		return 0, errors.Wrap(err, "error while counting servicios")
	}
	return count, nil
}

func insertCategorias(ctx context.Context, tx *sqlx.Tx, servicioID int64, categoriaIDs []int64) error {
	if len(categoriaIDs) == 0 {
		return nil
	}
	query := `
        INSERT INTO servicio_categorias (servicio_id, categoria_id)
        SELECT $1, unnest($2::bigint[])
        ON CONFLICT DO NOTHING
    `
	if _, err := tx.ExecContext(ctx, query, servicioID, pq.Array(categoriaIDs)); err != nil {
		return errors.Wrap(err, "error while insert servicio categorias")
	}
	return nil
}

// loadCategorias attaches the assigned categorias for every servicio with a
// single joined query.
func (r *PGRepository) loadCategorias(ctx context.Context, servicios []*model.Servicio) error {
	if len(servicios) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(servicios))
	for _, s := range servicios {
		ids = append(ids, s.ID)
	}

	query := `
        SELECT sc.servicio_id, c.*
        FROM servicio_categorias sc
        JOIN categorias c ON c.id = sc.categoria_id
        WHERE sc.servicio_id = ANY ($1)
        ORDER BY c.nombre ASC
    `
	rows, err := r.DB.QueryxContext(ctx, query, pq.Array(ids))
	if err != nil {
		return errors.Wrap(err, "error while getting servicio categorias")
	}
	defer rows.Close()

	byServicio := map[int64][]model.Categoria{}
	for rows.Next() {
		var row struct {
			ServicioID int64 `db:"servicio_id"`
			model.Categoria
		}
		if err := rows.StructScan(&row); err != nil {
			return errors.Wrap(err, "error while getting servicio categorias. StructScan")
		}
		byServicio[row.ServicioID] = append(byServicio[row.ServicioID], row.Categoria)
	}
	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "error while getting servicio categorias. rows")
	}

	for _, s := range servicios {
		s.Categorias = byServicio[s.ID]
	}
	return nil
}
