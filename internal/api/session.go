package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	jwt.RegisteredClaims

	// ApplicantID identifies the applicant the session belongs to.
	ApplicantID string `json:"applicant_id"`
}

// VerifySessionToken verifies an applicant session token (JWT, HS256) and
// returns the applicant ID it carries.
func VerifySessionToken(tokenString, secret string, now time.Time) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("missing token")
	}
	if secret == "" {
		return "", fmt.Errorf("missing session secret")
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	claims := &SessionClaims{}
	tok, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !tok.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return "", fmt.Errorf("token expired")
	}
	if claims.ApplicantID == "" {
		return "", fmt.Errorf("missing applicant in token")
	}
	return claims.ApplicantID, nil
}

// IssueSessionToken mints an applicant session token. Used by the dev token
// tool; in production tokens come from the university SSO.
func IssueSessionToken(applicantID, secret string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("missing session secret")
	}
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		ApplicantID: applicantID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
