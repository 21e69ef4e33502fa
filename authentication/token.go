package authentication

import (
	"errors"
	"time"

	"hms-backend/repository"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens live for seven days; expiry is the only revocation mechanism.
const tokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the signed identity tokens that gate every
// role-scoped operation. The signing key is fixed at construction.
type TokenService struct {
	key      []byte
	admins   repository.AdminStore
	doctors  repository.DoctorStore
	patients repository.PatientStore

	now func() time.Time
}

func NewTokenService(secret string, admins repository.AdminStore, doctors repository.DoctorStore, patients repository.PatientStore) *TokenService {
	return &TokenService{
		key:      []byte(secret),
		admins:   admins,
		doctors:  doctors,
		patients: patients,
		now:      time.Now,
	}
}

// Issue signs a token for the given identifier (email for doctors and
// patients, username for admins).
func (t *TokenService) Issue(identifier string) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   identifier,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// ExtractSubject parses the token, checks signature and expiry, and returns
// the encoded identifier.
func (t *TokenService) ExtractSubject(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return t.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Verify reports whether the token is valid for the required role: the
// signature and expiry must check out and the subject must still exist in the
// credential store for that role. Any parse failure means false; nothing is
// allowed to escape this boundary as an error.
func (t *TokenService) Verify(tokenString string, role Role) bool {
	subject, err := t.ExtractSubject(tokenString)
	if err != nil {
		return false
	}

	switch role {
	case RoleAdmin:
		_, err = t.admins.FindByUsername(subject)
	case RoleDoctor:
		_, err = t.doctors.FindByEmail(subject)
	case RolePatient:
		_, err = t.patients.FindByEmail(subject)
	default:
		return false
	}
	return err == nil
}
