package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type SignedDetails struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Uid       string `json:"uid"`
	Role      string `json:"role"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("the token is invalid")

type TokenMaker struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenMaker(secret string, ttl time.Duration) *TokenMaker {
	return &TokenMaker{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *TokenMaker) TTL() time.Duration {
	return m.ttl
}

func (m *TokenMaker) GenerateToken(email, name, uid, role, sessionID string) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("token secret not configured")
	}
	now := m.now()
	claim := SignedDetails{
		Email:     email,
		Name:      name,
		Uid:       uid,
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString(m.secret)
}

func (m *TokenMaker) ValidateToken(signedToken string) (*SignedDetails, error) {
	if len(m.secret) == 0 {
		return nil, errors.New("token secret not configured")
	}
	parser := jwt.Parser{}
	token, err := parser.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid || claims.Uid == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
