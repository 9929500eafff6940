package internals

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	IdentityKindHotel = "hotel"
	IdentityKindAgent = "agent"
)

// tokens expire a fixed window after issuance, there is no refresh flow
const accessTokenLifetime = 24 * time.Hour

var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is invalid")
)

type AccessTokenClaims struct {
	Kind        string
	SubjectID   int
	DisplayName string
}

// CreateAccessToken signs a claim set identifying one account of either
// identity kind. Both kinds share the same claim field names, the kind tag
// tells verifiers which account table the subject id refers to.
func CreateAccessToken(secret []byte, kind string, subjectID int, displayName string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"kind":         kind,
		"subject_id":   subjectID,
		"display_name": displayName,
		"exp":          time.Now().Add(accessTokenLifetime).Unix(),
	})
	return token.SignedString(secret)
}

// VerifyAccessToken checks the signature and expiry, then checks that the
// token was issued for the expected identity kind. A token of the wrong kind
// is reported as malformed, callers treat all verification failures the same.
func VerifyAccessToken(secret []byte, tokenString string, wantKind string) (AccessTokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return AccessTokenClaims{}, ErrTokenExpired
		}
		return AccessTokenClaims{}, ErrTokenMalformed
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return AccessTokenClaims{}, ErrTokenMalformed
	}

	kind, isString := mapClaims["kind"].(string)
	if !isString || kind != wantKind {
		return AccessTokenClaims{}, ErrTokenMalformed
	}
	subjectID, isNumber := mapClaims["subject_id"].(float64)
	if !isNumber || subjectID <= 0 {
		return AccessTokenClaims{}, ErrTokenMalformed
	}
	displayName, isString := mapClaims["display_name"].(string)
	if !isString || displayName == "" {
		return AccessTokenClaims{}, ErrTokenMalformed
	}

	return AccessTokenClaims{
		Kind:        kind,
		SubjectID:   int(subjectID),
		DisplayName: displayName,
	}, nil
}
