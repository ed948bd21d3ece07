package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:              "5555",
		DBType:            "sqlite",
		DBDatabase:        "app.db",
		DBConnectionLimit: 5,
		LogLevel:          "info",
		Environment:       EnvDevelopment,
		BcryptCost:        10,
	}
}

func TestValidateAcceptsSQLiteDefaults(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.DBType = "oracle"
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_TYPE")
}

func TestValidateServerDriverNeedsCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.DBType = "postgres"
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_USER is required")

	cfg.DBUser = "app"
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "5432", cfg.DBPort)
}

func TestValidateKeepsExplicitPort(t *testing.T) {
	cfg := validConfig()
	cfg.DBType = "mysql"
	cfg.DBUser = "app"
	cfg.DBPort = "13306"
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "13306", cfg.DBPort)
}

func TestValidateConnectionLimit(t *testing.T) {
	cfg := validConfig()
	cfg.DBConnectionLimit = 0
	assert.Error(t, Validate(cfg))
}

func TestValidateProduction(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = EnvProduction
	require.NoError(t, Validate(cfg))
	assert.True(t, cfg.IsProduction())

	cfg.LogLevel = "DEBUG"
	cfg.BcryptCost = 4
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "BCRYPT_COST")
}

func TestValidateBcryptRange(t *testing.T) {
	cfg := validConfig()
	cfg.BcryptCost = 99
	assert.Error(t, Validate(cfg))
}

func TestDefaultPort(t *testing.T) {
	assert.Equal(t, "3306", DefaultPort("mariadb"))
	assert.Equal(t, "1433", DefaultPort("mssql"))
	assert.Equal(t, "", DefaultPort("sqlite"))
}
