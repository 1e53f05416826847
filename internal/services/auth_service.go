package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pumpshop/seed/internal/config"
	"github.com/pumpshop/seed/internal/dto"
	"github.com/pumpshop/seed/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Viewer is the authenticated user a request is answered for.
type Viewer struct {
	UserID     int
	Role       string
	WorkerID   *int
	CustomerID *int
}

func (v Viewer) Staff() bool {
	return v.Role == models.RoleAdmin || v.Role == models.RoleOwner
}

type AuthService struct {
	ds  *models.Dataset
	cfg *config.Config
}

func NewAuthService(ds *models.Dataset, cfg *config.Config) *AuthService {
	return &AuthService{ds: ds, cfg: cfg}
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, ok := s.ds.UserByName(req.Username)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Role: user.Role, Username: user.Username}, nil
}

// Viewer resolves the user behind a verified token's UserId claim.
func (s *AuthService) Viewer(userID int) (Viewer, error) {
	for _, u := range s.ds.Users {
		if u.UserID == userID {
			return Viewer{UserID: u.UserID, Role: u.Role, WorkerID: u.WorkerID, CustomerID: u.CustomerID}, nil
		}
	}
	return Viewer{}, ErrUserNotFound
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    strconv.Itoa(user.UserID),
		"UserId": user.UserID,
		"Role":   user.Role,
		"iat":    now.Unix(),
		"exp":    now.Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
