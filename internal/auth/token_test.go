package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewIssuerRequiresConfig(t *testing.T) {
	if _, err := NewIssuer("", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := NewIssuer("s3cret", 0); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	issuer, err := NewIssuer("s3cret", 15*time.Minute)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	issuer.WithClock(fixedClock(now))

	token, err := issuer.Issue(42, "a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, email, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected subject 42, got %d", userID)
	}
	if email != "a@x.com" {
		t.Fatalf("expected email claim a@x.com, got %q", email)
	}
}

func TestIssueSetsExpiryFromTTL(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	ttl := 15 * time.Minute
	issuer, err := NewIssuer("s3cret", ttl)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	issuer.WithClock(fixedClock(now))

	token, err := issuer.Issue(7, "b@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var claims Claims
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("s3cret"), nil
	}, jwt.WithTimeFunc(fixedClock(now))); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !claims.IssuedAt.Time.Equal(now) {
		t.Fatalf("expected iat %v, got %v", now, claims.IssuedAt.Time)
	}
	if !claims.ExpiresAt.Time.Equal(now.Add(ttl)) {
		t.Fatalf("expected exp %v, got %v", now.Add(ttl), claims.ExpiresAt.Time)
	}
}

func TestVerifyErrorKinds(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	issuer, err := NewIssuer("s3cret", time.Minute)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	issuer.WithClock(fixedClock(now))

	good, err := issuer.Issue(1, "a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	t.Run("malformed", func(t *testing.T) {
		if _, _, err := issuer.Verify("not.a.token"); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("expected ErrTokenMalformed, got %v", err)
		}
	})

	t.Run("bad signature", func(t *testing.T) {
		other, err := NewIssuer("different-secret", time.Minute)
		if err != nil {
			t.Fatalf("new issuer: %v", err)
		}
		other.WithClock(fixedClock(now))
		if _, _, err := other.Verify(good); !errors.Is(err, ErrTokenSignature) {
			t.Fatalf("expected ErrTokenSignature, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		late, err := NewIssuer("s3cret", time.Minute)
		if err != nil {
			t.Fatalf("new issuer: %v", err)
		}
		late.WithClock(fixedClock(now.Add(2 * time.Minute)))
		if _, _, err := late.Verify(good); !errors.Is(err, ErrTokenExpired) {
			t.Fatalf("expected ErrTokenExpired, got %v", err)
		}
	})
}
