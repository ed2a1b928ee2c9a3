package mysql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contractbot/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		User:     "bot",
		Password: "secret",
		Host:     "db",
		Port:     3306,
		Name:     "contractbot",
	}

	got := dsn(cfg)
	assert.Equal(t, "bot:secret@tcp(db:3306)/contractbot?parseTime=true&charset=utf8mb4&collation=utf8mb4_unicode_ci", got)
}
