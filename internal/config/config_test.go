package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/mysql.yaml")
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.Equal(t, 4*time.Second, cfg.Timeout)
	assert.Equal(t, "mysql", cfg.Storage.Driver)
	assert.Equal(t, "mysql-8.0", cfg.Storage.DBHost)
	assert.Equal(t, 3306, cfg.Storage.DBPort)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 500, cfg.Cache.Size)
	assert.Equal(t, uint(3), cfg.Retry.Attempts)
	assert.Equal(t, []string{"https://klima.example.dk"}, cfg.CORSOrigins)
	assert.Equal(t, "errors.log", cfg.ErrorLogPath)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("testdata/missing.yaml")
	assert.ErrorContains(t, err, "does not exist")

	_, err = Load("testdata/bad_driver.yaml")
	assert.ErrorContains(t, err, "unknown storage driver")
}
