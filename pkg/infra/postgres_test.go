package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPostgresConnection_UnreachableDatabase(t *testing.T) {
	db, err := NewPostgresConnection(PostgresConfig{
		Host:     "127.0.0.1",
		Port:     closedPort(t),
		User:     "admin",
		Password: "secret",
		DBName:   "monitor",
	})

	assert.Error(t, err)
	assert.Nil(t, db)
}
