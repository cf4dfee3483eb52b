package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingEmail = errors.New("identity payload must carry an email")
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidClaims means a registered claim in the identity payload has a
	// type the verifier could never decode.
	ErrInvalidClaims = errors.New("identity payload has malformed registered claims")
)

// JWTManager signs and verifies the HS256 access tokens handed out by POST /jwt.
// There is no refresh token and no revocation: a token is valid until it expires.
type JWTManager struct {
	Secret []byte
	TTL    time.Duration

	now func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{Secret: []byte(secret), TTL: ttl, now: time.Now}
}

// Claims is the decoded identity of a verified token. Only the email takes part
// in authorization; any other caller-supplied fields stay in the token untouched.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Issue signs the caller-supplied identity payload, adding iat and exp.
// Timing claims present in the payload are replaced.
func (m *JWTManager) Issue(identity map[string]any) (string, time.Time, error) {
	email, _ := identity["email"].(string)
	if email == "" {
		return "", time.Time{}, ErrMissingEmail
	}
	if !registeredClaimsValid(identity) {
		return "", time.Time{}, ErrInvalidClaims
	}

	now := m.clock()
	exp := now.Add(m.TTL)
	claims := jwt.MapClaims{}
	for k, v := range identity {
		switch k {
		case "exp", "iat", "nbf":
			continue
		}
		claims[k] = v
	}
	claims["iat"] = jwt.NewNumericDate(now)
	claims["exp"] = jwt.NewNumericDate(exp)

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse verifies signature and expiry. Every failure collapses into
// ErrInvalidToken so callers cannot tell expired from forged tokens.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.clock),
	)
	if err != nil || !tkn.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// registeredClaimsValid checks that sub, iss, jti and aud carry the JSON
// types RegisteredClaims decodes: strings, or a string list for aud.
func registeredClaimsValid(identity map[string]any) bool {
	for _, k := range []string{"sub", "iss", "jti"} {
		if v, ok := identity[k]; ok {
			if _, isString := v.(string); !isString {
				return false
			}
		}
	}
	switch aud := identity["aud"].(type) {
	case nil, string, []string:
	case []any:
		for _, a := range aud {
			if _, isString := a.(string); !isString {
				return false
			}
		}
	default:
		return false
	}
	return true
}

func (m *JWTManager) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}
