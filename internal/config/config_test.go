package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tripplanner", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 120, cfg.Auth.JWTExpireMinute)
	assert.Equal(t, 8, cfg.Auth.PasswordMinLength)
	assert.Equal(t, "trip.activity.persist", cfg.RabbitMQ.ActivityQueue)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PASSWORD_MIN_LENGTH", "12")
	t.Setenv("REDIS_TRIP_LIST_TTL_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 12, cfg.Auth.PasswordMinLength)
	assert.Equal(t, 5, cfg.Redis.TripListTTLSeconds)
}

func TestLoad_BadEnvIntFallsBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
}

func TestHTTPAddrAndDSN(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.Host = "127.0.0.1"
	cfg.App.Port = 8081
	assert.Equal(t, "127.0.0.1:8081", cfg.HTTPAddr())

	cfg.MySQL = MySQLConfig{
		Host: "db", Port: 3307, User: "u", Password: "p", DB: "trips", Params: "parseTime=true",
	}
	assert.Equal(t, "u:p@tcp(db:3307)/trips?parseTime=true", cfg.MySQLDSN())
}
