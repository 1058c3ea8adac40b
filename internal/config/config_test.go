package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		t.Setenv("DB_NAME", "payroll")
		t.Setenv("JWT_SECRET", "super-secret")

		cfg := Load()
		assert.Equal(t, "9999", cfg.Port)
		assert.Equal(t, "payroll", cfg.DBName)
		assert.Equal(t, "super-secret", cfg.JWTSecret)
	})

	t.Run("applies defaults for unset variables", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("DB_NAME", "")

		cfg := Load()
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "employee_management", cfg.DBName)
	})
}

func TestValidate(t *testing.T) {
	t.Run("missing token secret is fatal", func(t *testing.T) {
		err := Config{}.Validate()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("complete configuration passes", func(t *testing.T) {
		assert.NoError(t, Config{JWTSecret: "super-secret"}.Validate())
	})
}
