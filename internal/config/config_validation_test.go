package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid config",
			cfg: StructuredConfig{
				Auth:    Auth{TokenSignKey: "secret", BcryptCost: 12},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
			},
			wantErr: nil,
		},
		{
			name: "missing sign key",
			cfg: StructuredConfig{
				Auth:    Auth{BcryptCost: 12},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
			},
			wantErr: ErrMissingTokenSignKey,
		},
		{
			name: "missing DSN",
			cfg: StructuredConfig{
				Auth: Auth{TokenSignKey: "secret", BcryptCost: 12},
			},
			wantErr: ErrMissingDatabaseDSN,
		},
		{
			name: "bcrypt cost too low",
			cfg: StructuredConfig{
				Auth:    Auth{TokenSignKey: "secret", BcryptCost: 2},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
			},
			wantErr: ErrInvalidBcryptCost,
		},
		{
			name: "bcrypt cost too high",
			cfg: StructuredConfig{
				Auth:    Auth{TokenSignKey: "secret", BcryptCost: 40},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
			},
			wantErr: ErrInvalidBcryptCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
