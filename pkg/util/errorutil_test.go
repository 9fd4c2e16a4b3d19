package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	err := NewForbidden("nope")

	domainErr := ToDomainError(err)

	require.NotNil(t, domainErr)
	assert.Equal(t, CodeForbidden, domainErr.Code)
	assert.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	domainErr := ToDomainError(fmt.Errorf("lookup: %w", pgx.ErrNoRows))

	require.NotNil(t, domainErr)
	assert.Equal(t, CodeNotFound, domainErr.Code)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	domainErr := ToDomainError(errors.New("boom"))

	require.NotNil(t, domainErr)
	assert.Equal(t, CodeInternal, domainErr.Code)
	assert.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
}

func TestIsCode(t *testing.T) {
	err := NewValidationError("bad", nil)

	assert.True(t, IsCode(err, CodeValidationFailed))
	assert.False(t, IsCode(err, CodeConflict))
	assert.False(t, IsCode(nil, CodeValidationFailed))
	assert.False(t, IsCode(errors.New("plain"), CodeValidationFailed))
}
