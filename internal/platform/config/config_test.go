package config

import "testing"

func TestDriverResolution(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"explicit driver wins", Config{KVDriver: "memory", DatabaseURL: "postgres://x"}, "memory"},
		{"database url implies postgres", Config{DatabaseURL: "postgres://x"}, "postgres"},
		{"sqlite fallback", Config{}, "sqlite"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.Driver(); got != tc.want {
				t.Fatalf("expected driver %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Addr == "" {
		t.Fatal("expected default address")
	}
	if cfg.MaxBodyBytes <= 0 {
		t.Fatal("expected positive body limit")
	}
}
