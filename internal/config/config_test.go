package config

import (
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid file backend config",
			config: Config{
				Port:          "8081",
				DataBackend:   "file",
				DataDirectory: "./data",
				LedgerKey:     "transactions",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				Port:        "8081",
				DataBackend: "memory",
				LedgerKey:   "transactions",
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:        "abc",
				DataBackend: "memory",
				LedgerKey:   "transactions",
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:        "70000",
				DataBackend: "memory",
				LedgerKey:   "transactions",
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid backend",
			config: Config{
				Port:        "8081",
				DataBackend: "sheets",
				LedgerKey:   "transactions",
			},
			wantErr:     true,
			errorString: "invalid data backend 'sheets'",
		},
		{
			name: "file backend without directory",
			config: Config{
				Port:        "8081",
				DataBackend: "file",
				LedgerKey:   "transactions",
			},
			wantErr:     true,
			errorString: "data directory cannot be empty",
		},
		{
			name: "sqlite backend without path",
			config: Config{
				Port:        "8081",
				DataBackend: "sqlite",
				LedgerKey:   "transactions",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "empty ledger key",
			config: Config{
				Port:        "8081",
				DataBackend: "memory",
			},
			wantErr:     true,
			errorString: "ledger key cannot be empty",
		},
		{
			name: "ledger key with path separator",
			config: Config{
				Port:        "8081",
				DataBackend: "memory",
				LedgerKey:   "../transactions",
			},
			wantErr:     true,
			errorString: "must not contain path separators",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "DATA_DIR", "SQLITE_DB_PATH", "LEDGER_KEY"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8081" {
		t.Fatalf("default port = %s", cfg.Port)
	}
	if cfg.DataBackend != "file" {
		t.Fatalf("default backend = %s", cfg.DataBackend)
	}
	if cfg.LedgerKey != "transactions" {
		t.Fatalf("default ledger key = %s", cfg.LedgerKey)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("LEDGER_KEY", "household")

	cfg := Load()
	if cfg.Port != "9090" || cfg.DataBackend != "sqlite" || cfg.LedgerKey != "household" {
		t.Fatalf("environment not honored: %+v", cfg)
	}
}
