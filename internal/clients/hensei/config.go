package hensei

import (
	env "github.com/caarlos0/env/v11"

	"github.com/granblue-tools/hensei-transfer/internal/errors"
)

// EnvConfig is the client configuration read from the environment.
type EnvConfig struct {
	// BaseURL is the service API root, including the version prefix.
	BaseURL string `env:"HENSEI_API_URL" envDefault:"https://hensei-api-production-66fb.up.railway.app/api/v1"`
	// Token is the bearer token. The website keeps it in a cookie on its
	// own origin; for CLI use it has to be copied out once.
	Token string `env:"HENSEI_API_TOKEN"`
}

// LoadEnvConfig reads the client configuration from the environment.
func LoadEnvConfig() (*EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to read client config from environment")
	}
	return &cfg, nil
}

// CredentialProvider supplies the bearer token for authenticated calls.
// An empty token means the caller is anonymous; search still works, every
// mutating call requires authentication.
type CredentialProvider interface {
	Token() string
}

// StaticCredentials is a CredentialProvider around a fixed token.
type StaticCredentials string

// Token returns the fixed token.
func (c StaticCredentials) Token() string {
	return string(c)
}
