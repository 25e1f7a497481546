package storage

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Uniqueness of nombre is enforced in the usecases so duplicates surface as
// validation errors instead of driver errors; the indexes here are not UNIQUE.
const schema = `
CREATE TABLE IF NOT EXISTS categorias (
	id BIGSERIAL PRIMARY KEY,
	nombre VARCHAR(150) NOT NULL,
	descripcion TEXT,
	icono VARCHAR(700),
	activo BOOLEAN NOT NULL DEFAULT TRUE,
	categoria_padre_id BIGINT REFERENCES categorias (id),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_categorias_nombre ON categorias (nombre);
CREATE INDEX IF NOT EXISTS idx_categorias_padre ON categorias (categoria_padre_id);

CREATE TABLE IF NOT EXISTS servicios (
	id BIGSERIAL PRIMARY KEY,
	nombre VARCHAR(300) NOT NULL,
	descripcion TEXT,
	activo BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_servicios_nombre ON servicios (nombre);

CREATE TABLE IF NOT EXISTS servicio_categorias (
	servicio_id BIGINT NOT NULL REFERENCES servicios (id) ON DELETE CASCADE,
	categoria_id BIGINT NOT NULL REFERENCES categorias (id) ON DELETE CASCADE,
	PRIMARY KEY (servicio_id, categoria_id)
);
`

// Migrate applies the idempotent schema at startup.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "error while applying schema")
	}
	return nil
}
