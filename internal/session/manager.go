package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "skillswap"

// Manager issues, verifies, and revokes session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
}

// NewManager returns a Manager signing tokens with secret and keeping live
// token IDs in store for ttl.
func NewManager(secret string, ttl time.Duration, store Store) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, store: store}
}

// TTL returns the session lifetime, used for the cookie expiry.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a signed session token for the user and registers it as live.
func (m *Manager) Issue(ctx context.Context, userID uint) (string, error) {
	now := time.Now()
	jti := uuid.New().String()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": issuer,
		"jti": jti,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	if err := m.store.Save(ctx, jti, userID, m.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

// Verify checks the token signature, issuer, expiry, and revocation state,
// and returns the user ID encoded in it.
func (m *Manager) Verify(ctx context.Context, tokenString string) (uint, error) {
	userID, jti, err := m.parse(tokenString)
	if err != nil {
		return 0, err
	}

	live, err := m.store.Valid(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("check session store: %w", err)
	}
	if !live {
		return 0, fmt.Errorf("session revoked or expired")
	}
	return userID, nil
}

// Revoke invalidates the token server-side. Verifies the signature first so
// an attacker cannot revoke arbitrary session IDs.
func (m *Manager) Revoke(ctx context.Context, tokenString string) error {
	_, jti, err := m.parse(tokenString)
	if err != nil {
		return err
	}
	return m.store.Revoke(ctx, jti)
}

func (m *Manager) parse(tokenString string) (uint, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return 0, "", fmt.Errorf("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", fmt.Errorf("invalid session claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, "", fmt.Errorf("missing subject claim")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, "", fmt.Errorf("invalid subject claim")
	}

	jti, ok := claims["jti"].(string)
	if !ok || jti == "" {
		return 0, "", fmt.Errorf("missing jti claim")
	}

	return uint(userID), jti, nil
}
