package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"RUN_ADDRESS", "DATABASE_URI", "MIGRATIONS_DIR", "DATABASE_SSL_MODE", "JWT_SECRET", "CACHE_TTL",
	} {
		// Setenv восстановит исходное значение после теста.
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	conf, err := LoadConfig([]string{"-d", "postgres://localhost/invoices", "-j", "secret"})
	s.Require().NoError(err)

	s.Equal(&Config{
		RunAddress:      "localhost:8080",
		DatabaseDSN:     "postgres://localhost/invoices",
		MigrationsDir:   "internal/db/migrations",
		DatabaseSSLMode: "require",
		JWTSecret:       "secret",
		CacheTTL:        10 * time.Minute,
	}, conf)
}

func (s *ConfigTestSuite) TestEnvOverridesFlags() {
	s.T().Setenv("RUN_ADDRESS", ":9090")
	s.T().Setenv("DATABASE_URI", "postgres://db/invoices")
	s.T().Setenv("DATABASE_SSL_MODE", "verify-full")
	s.T().Setenv("CACHE_TTL", "30s")

	conf, err := LoadConfig([]string{"-a", ":8081", "-d", "postgres://flag/invoices", "-j", "secret", "-c", "1m"})
	s.Require().NoError(err)

	s.Equal(":9090", conf.RunAddress)
	s.Equal("postgres://db/invoices", conf.DatabaseDSN)
	s.Equal("verify-full", conf.DatabaseSSLMode)
	s.Equal("secret", conf.JWTSecret)
	s.Equal(30*time.Second, conf.CacheTTL)
}

func (s *ConfigTestSuite) TestRequired() {
	cases := []struct {
		name string
		args []string
	}{
		{name: "no dsn", args: []string{"-j", "secret"}},
		{name: "no jwt secret", args: []string{"-d", "postgres://localhost/invoices"}},
		{name: "unknown flag", args: []string{"-d", "postgres://localhost/invoices", "-j", "secret", "-x"}},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := LoadConfig(t.args)
			s.Require().Error(err)
		})
	}
}
