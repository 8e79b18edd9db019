package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "url takes priority",
			cfg: DatabaseConfig{
				URL:  "postgres://u:p@db:5432/steward",
				Host: "ignored",
			},
			want: "postgres://u:p@db:5432/steward",
		},
		{
			name: "constructed from fields",
			cfg: DatabaseConfig{
				Host: "localhost", Port: 5432, User: "steward",
				Password: "pw", Database: "steward", SSLMode: "require",
			},
			want: "postgres://steward:pw@localhost:5432/steward?sslmode=require",
		},
		{
			name: "sslmode defaults to disable",
			cfg: DatabaseConfig{
				Host: "localhost", Port: 5432, User: "steward",
				Password: "pw", Database: "steward",
			},
			want: "postgres://steward:pw@localhost:5432/steward?sslmode=disable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:   ServerConfig{Port: 8080},
		Security: SecurityConfig{JWTSecret: "0123456789abcdef0123456789abcdef"},
	}
	require.NoError(t, valid.Validate())

	short := valid
	short.Security.JWTSecret = "too-short"
	require.Error(t, short.Validate())

	badPort := valid
	badPort.Server.Port = 0
	require.Error(t, badPort.Validate())
}

func TestLoadGeneratesJWTSecret(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cfg.Security.JWTSecret), 32)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 25, cfg.Worker.QueryPoolSize)
}
