package config

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "10s", want: 10 * time.Second},
		{in: "5m", want: 5 * time.Minute},
		{in: "10", want: 10 * time.Second},
		{in: `"10s"`, want: 10 * time.Second},
		{in: "'30'", want: 30 * time.Second},
		{in: " 15s ", want: 15 * time.Second},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDuration(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("parse %q: expected %v, got %v", tt.in, tt.want, got)
			}
		})
	}
}

func TestLoadRequiresJWTConfig(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://localhost/test")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_TTL", "1h")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWT.TTL.Duration() != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", cfg.JWT.TTL.Duration())
	}
}
