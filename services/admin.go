package services

import (
	"hms-backend/authentication"
	"hms-backend/models"
	"hms-backend/repository"

	"go.uber.org/zap"
)

// AdminService handles admin login; admin accounts are provisioned out of
// band, so there is no signup path.
type AdminService struct {
	admins repository.AdminStore
	tokens *authentication.TokenService
	log    *zap.Logger
}

func NewAdminService(admins repository.AdminStore, tokens *authentication.TokenService, log *zap.Logger) *AdminService {
	return &AdminService{admins: admins, tokens: tokens, log: log}
}

// Login checks the admin's credentials and issues a token with the username
// as subject. Legacy plaintext passwords are upgraded to bcrypt on first
// successful login.
func (s *AdminService) Login(login models.Login) (string, error) {
	admin, err := s.admins.FindByUsername(login.Identifier)
	if err != nil {
		return "", ErrUnauthorized
	}

	if len(admin.Password) > 0 && admin.Password[0] == '$' {
		if !checkPassword(admin.Password, login.Password) {
			return "", ErrUnauthorized
		}
	} else {
		if admin.Password != login.Password {
			return "", ErrUnauthorized
		}
		hashed, err := hashPassword(login.Password)
		if err != nil {
			return "", err
		}
		admin.Password = hashed
		if err := s.admins.Save(admin); err != nil {
			s.log.Warn("failed to upgrade admin password hash", zap.Error(err))
		}
	}

	return s.tokens.Issue(admin.Username)
}
