// Package auth covers signup and login with passwords, passwordless OTP login,
// and the config-driven admin credential.
package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/models"
	"github.com/monupal1122/grocery-backend/notify"
	"github.com/monupal1122/grocery-backend/store"
)

const (
	tokenTTL = 7 * 24 * time.Hour
	otpTTL   = 10 * time.Minute
)

type Config struct {
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
}

type Service struct {
	users  store.Users
	mailer notify.Mailer
	cfg    Config
	now    func() time.Time
	genOTP func() (string, error)
}

func NewService(st *store.Store, mailer notify.Mailer, cfg Config) *Service {
	return &Service{
		users:  st.Users,
		mailer: mailer,
		cfg:    cfg,
		now:    time.Now,
		genOTP: generateOTP,
	}
}

// generateOTP draws a 6-digit code from crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *Service) issueToken(subject, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   subject,
		"role": role,
		"exp":  s.now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// Signup creates a password-backed account and returns it with a token.
func (s *Service) Signup(ctx context.Context, username, email, password string) (models.User, string, error) {
	if username == "" || email == "" || password == "" {
		return models.User{}, "", apperr.Validation("username, email, and password required")
	}
	if len(password) < 8 {
		return models.User{}, "", apperr.Validation("password must be at least 8 characters")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return models.User{}, "", apperr.Validation("user already exists with this email")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return models.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	now := s.now()
	user := models.User{
		Id:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return models.User{}, "", err
	}

	token, err := s.issueToken(user.Id.Hex(), "user")
	if err != nil {
		return models.User{}, "", err
	}
	user.Password = ""
	return user, token, nil
}

// Login verifies a password credential. Unknown email and wrong password
// produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", apperr.Validation("email and password required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return models.User{}, "", apperr.Validation("invalid credentials")
		}
		return models.User{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.User{}, "", apperr.Validation("invalid credentials")
	}

	token, err := s.issueToken(user.Id.Hex(), "user")
	if err != nil {
		return models.User{}, "", err
	}
	user.Password = ""
	return user, token, nil
}

// RequestOTP finds or creates the account for the email and mails a login
// code. The mail is the credential, so delivery failure is an error here,
// not a best-effort side effect.
func (s *Service) RequestOTP(ctx context.Context, email string) error {
	if email == "" {
		return apperr.Validation("email required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		now := s.now()
		user = models.User{
			Id:        primitive.NewObjectID(),
			Username:  email,
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.users.Insert(ctx, user); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	code, err := s.genOTP()
	if err != nil {
		return err
	}
	if err := s.users.SetOTP(ctx, user.Id, code, s.now().Add(otpTTL)); err != nil {
		return err
	}
	return s.mailer.OTP(email, code)
}

// VerifyOTP checks the code, clears it, and issues a token.
func (s *Service) VerifyOTP(ctx context.Context, email, code string) (models.User, string, error) {
	if email == "" || code == "" {
		return models.User{}, "", apperr.Validation("email and otp required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return models.User{}, "", apperr.Unauthorized("invalid or expired otp")
		}
		return models.User{}, "", err
	}
	if user.Otp == "" || user.Otp != code || s.now().After(user.OtpExpires) {
		return models.User{}, "", apperr.Unauthorized("invalid or expired otp")
	}

	if err := s.users.ClearOTP(ctx, user.Id); err != nil {
		return models.User{}, "", err
	}

	token, err := s.issueToken(user.Id.Hex(), "user")
	if err != nil {
		return models.User{}, "", err
	}
	user.Otp = ""
	user.Password = ""
	return user, token, nil
}

// AdminLogin checks against the configured admin credential.
func (s *Service) AdminLogin(email, password string) (string, error) {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPasswordHash == "" {
		return "", apperr.Unauthorized("admin login not configured")
	}
	if email != s.cfg.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) != nil {
		return "", apperr.Unauthorized("invalid admin credentials")
	}
	return s.issueToken(email, "admin")
}
