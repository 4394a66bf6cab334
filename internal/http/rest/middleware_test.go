package rest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestVerifyToken(t *testing.T) {
	api, _ := newTestAPI(t)

	exp := time.Now().Add(time.Hour).Unix()

	t.Run("valid access token", func(t *testing.T) {
		signed := signTestToken(t, api.Config.JwtSecret, jwt.MapClaims{
			"sub": "user-1", "typ": "access", "exp": exp,
		})
		claims, err := api.verifyToken(signed, false)
		if err != nil {
			t.Fatalf("verifyToken returned error %v", err)
		}
		if claims.UserID != "user-1" {
			t.Errorf("UserID = %q; want user-1", claims.UserID)
		}
	})

	t.Run("missing exp claim", func(t *testing.T) {
		signed := signTestToken(t, api.Config.JwtSecret, jwt.MapClaims{
			"sub": "user-1", "typ": "access",
		})
		if _, err := api.verifyToken(signed, false); err == nil {
			t.Error("token without exp was accepted")
		}
	})

	t.Run("missing sub claim", func(t *testing.T) {
		signed := signTestToken(t, api.Config.JwtSecret, jwt.MapClaims{
			"typ": "access", "exp": exp,
		})
		if _, err := api.verifyToken(signed, false); err == nil {
			t.Error("token without sub was accepted")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		signed := signTestToken(t, "other-secret", jwt.MapClaims{
			"sub": "user-1", "typ": "access", "exp": exp,
		})
		if _, err := api.verifyToken(signed, false); err == nil {
			t.Error("token signed with the wrong secret was accepted")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		signed := signTestToken(t, api.Config.JwtSecret, jwt.MapClaims{
			"sub": "user-1", "typ": "access", "exp": time.Now().Add(-time.Hour).Unix(),
		})
		_, err := api.verifyToken(signed, false)
		if err == nil || err.Error() != "token expired" {
			t.Errorf("expired token returned %v; want token expired", err)
		}
	})

	t.Run("refresh token rejected as access", func(t *testing.T) {
		signed := signTestToken(t, api.Config.JwtSecret, jwt.MapClaims{
			"sub": "user-1", "typ": "refresh", "exp": exp,
		})
		if _, err := api.verifyToken(signed, false); err == nil {
			t.Error("refresh token passed access verification")
		}
	})
}
