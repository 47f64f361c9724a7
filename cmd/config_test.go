package cmd_test

import (
	"testing"
	"time"

	"storefront/cmd"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig(env(nil))

	require.NoError(t, err)
	assert.Equal(t, cmd.DefaultHTTPPort, cfg.HTTPPort)
	assert.Equal(t, cmd.DefaultNATSURL, cfg.NATSURL)
	assert.Equal(t, cmd.DefaultCartTTL, cfg.CartTTL)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.True(t, cfg.NotifySound)
	assert.True(t, cfg.OpenAPIValidation)
}

func TestLoadConfig_ParsesValues(t *testing.T) {
	cfg, err := cmd.LoadConfig(env(map[string]string{
		"HTTP_PORT":          "9090",
		"CART_TTL":           "2h",
		"API_TIMEOUT":        "3s",
		"NOTIFY_SOUND":       "false",
		"OPENAPI_VALIDATION": "0",
		"REFRESH_SCHEDULE":   "*/5 * * * * *",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 2*time.Hour, cfg.CartTTL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.False(t, cfg.NotifySound)
	assert.False(t, cfg.OpenAPIValidation)
	assert.Equal(t, "*/5 * * * * *", cfg.RefreshSchedule)
}

func TestLoadConfig_ReportsEveryMalformedKey(t *testing.T) {
	_, err := cmd.LoadConfig(env(map[string]string{
		"CART_TTL":     "a day",
		"API_TIMEOUT":  "-1s",
		"NOTIFY_SOUND": "loud",
	}))

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorContains(t, err, "CART_TTL")
	assert.ErrorContains(t, err, "API_TIMEOUT")
	assert.ErrorContains(t, err, "NOTIFY_SOUND")
}

func TestConfig_ValidateServer(t *testing.T) {
	cfg, err := cmd.LoadConfig(env(map[string]string{"DB_HOST": "db"}))
	require.NoError(t, err)

	err = cfg.ValidateServer()

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorContains(t, err, "STAFF_TOKEN_SECRET")
	assert.NotContains(t, err.Error(), "DB_HOST")
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "shop", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=shop sslmode=disable", cfg.DSN())
}
