package helper

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	secret   []byte
	validFor time.Duration
}

// SetupAuth builds the token service from the configured secret. The secret is
// expected to be base64; a plain string is accepted as-is so local setups
// don't have to encode theirs.
func SetupAuth(secret string, validFor time.Duration) Auth {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil || len(key) == 0 {
		key = []byte(secret)
	}
	return Auth{secret: key, validFor: validFor}
}

func (a Auth) GenerateToken(subject string, extraClaims map[string]interface{}) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(a.validFor).Unix(),
	}
	for k, v := range extraClaims {
		switch k {
		case "sub", "iat", "exp":
			continue
		}
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(a.secret)
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return tokenStr, nil
}

// ExtractSubject verifies the signature and returns the embedded subject.
// Expired tokens come back as ErrExpiredToken, everything else that fails
// verification as ErrInvalidToken, so callers can tell the two apart.
func (a Auth) ExtractSubject(tokenString string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}

// IsTokenValid reports whether the token verifies, is unexpired and carries
// the expected subject.
func (a Auth) IsTokenValid(tokenString, expectedSubject string) bool {
	sub, err := a.ExtractSubject(tokenString)
	return err == nil && sub == expectedSubject
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
