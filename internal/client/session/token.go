package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// SubjectFromToken returns the "sub" claim of a JWT without verifying it.
// It is used only to label the cached user record.
func SubjectFromToken(token string) (string, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}
	return sub, true
}
