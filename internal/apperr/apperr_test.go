package apperr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationf(t *testing.T) {
	err := Validationf("nombre", "ya existe una categoría con el nombre '%s'", "Hogar")
	assert.Equal(t, "nombre", err.Field)
	assert.Equal(t, "ya existe una categoría con el nombre 'Hogar'", err.Error())
}

func TestValidationErrorAsThroughWrap(t *testing.T) {
	var wrapped error = errors.Wrap(Validationf("categoria_ids", "categoría con ID 9 no encontrada"), "update failed")

	var verr *ValidationError
	require.ErrorAs(t, wrapped, &verr)
	assert.Equal(t, "categoria_ids", verr.Field)
}
