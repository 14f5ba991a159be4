package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/ebazar/auth-service/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT session token.
//
// The token includes the following registered claims:
//   - Issuer  (iss): identifies the service that issued the token
//   - Subject (sub): the account identifier
//   - IssuedAt (iat): the current time
//
// The token deliberately carries no "exp" claim: the session lifetime is
// attached at the transport level through the expiring session cookie.
// See DESIGN.md for the trade-off this preserves.
//
// Returns an error if any parameter is empty or signing fails.
func GenerateJWTToken(issuer, userID, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := &jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  userID,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Subject (sub) claim presence
//
// Freshness is NOT checked here because issued tokens carry no expiry claim;
// staleness is bounded only by the session cookie's lifetime.
//
// Returns the parsed token with the extracted UserID, or an error if the
// signature is invalid, the payload is malformed, or the subject is missing.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if userID == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, UserID: userID}, nil
}
