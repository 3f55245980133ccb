package config_test

import (
	"testing"
	"time"

	"github.com/straye-as/paint-stock-api/internal/config"
	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Storage.Mode)
	assert.Equal(t, "paint-stock-data-v2", cfg.Storage.SnapshotKey)
	assert.Equal(t, 30*time.Minute, cfg.Auth.SessionTimeout())
	assert.Equal(t, "146161", cfg.Auth.AdminPassword)
	assert.Equal(t, domain.DefaultTargets, cfg.Report.TargetsByColor())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("STORAGE_SNAPSHOTKEY", "custom-key")
	t.Setenv("APP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "custom-key", cfg.Storage.SnapshotKey)
	assert.Equal(t, 9090, cfg.App.Port)
}

func TestTargetsByColor(t *testing.T) {
	rc := config.ReportConfig{Targets: map[string]float64{
		"metallic": 320,
		"PINK":     0,
		"green":    99,
	}}

	targets := rc.TargetsByColor()

	assert.Len(t, targets, len(domain.AllColors))
	assert.Equal(t, 320.0, targets[domain.ColorMetallic])
	assert.Equal(t, 0.0, targets[domain.ColorPink])
	assert.Equal(t, 250.0, targets[domain.ColorBlue])
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	d := config.DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "paint", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=paint sslmode=disable", d.ConnectionString())
	assert.Equal(t, 5*time.Minute, (&config.DatabaseConfig{ConnMaxLifetime: 300}).ConnMaxLifetimeDuration())
}
