package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_MongoDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMongo, cfg.Store.Driver)
	assert.Equal(t, "app-data", cfg.Mongo.Database)
	assert.Equal(t, 8002, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL())
	assert.Equal(t, 5*time.Second, cfg.Store.Timeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_PostgresRequiresHost(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("JWT_SECRET", testSecret)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database host")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("LOGIN_RATE_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TokenTTL())
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "redis:6379", cfg.Redis.GetAddr())
	assert.Equal(t, 30*time.Second, cfg.RateLimit.LoginWindow)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Store: StoreConfig{Driver: StoreDriverMemory, Timeout: time.Second},
			JWT:   JWTConfig{Secret: testSecret, ExpiryHours: 24},
			Auth:  AuthConfig{BcryptCost: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "sqlite" }, wantErr: "unknown store driver"},
		{name: "short secret", mutate: func(c *Config) { c.JWT.Secret = "short" }, wantErr: "at least 32"},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "JWT secret is required"},
		{name: "zero expiry", mutate: func(c *Config) { c.JWT.ExpiryHours = 0 }, wantErr: "expiry"},
		{name: "bad bcrypt cost", mutate: func(c *Config) { c.Auth.BcryptCost = 2 }, wantErr: "bcrypt"},
		{name: "mongo without uri", mutate: func(c *Config) { c.Store.Driver = StoreDriverMongo }, wantErr: "MongoDB URI"},
		{name: "zero timeout", mutate: func(c *Config) { c.Store.Timeout = 0 }, wantErr: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.wantErr), err.Error())
		})
	}
}

func TestGetDSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "app", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=app sslmode=disable", c.GetDSN())
}
