package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewProfileRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewProfileRepository(pool)
	assert.NotNil(t, repo)
}
