package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/monupal1122/grocery-backend/apperr"
	"github.com/monupal1122/grocery-backend/models"
	"github.com/monupal1122/grocery-backend/store"
)

type fakeMailer struct {
	otps    map[string]string
	failOTP error
}

func (m *fakeMailer) OrderConfirmation(models.Order, models.User, models.Address) error { return nil }
func (m *fakeMailer) OrderStatusUpdate(models.Order, models.User, models.Address, string, string) error {
	return nil
}
func (m *fakeMailer) OTP(email, code string) error {
	if m.failOTP != nil {
		return m.failOTP
	}
	if m.otps == nil {
		m.otps = map[string]string{}
	}
	m.otps[email] = code
	return nil
}

func newTestService(t *testing.T) (*Service, *store.Store, *fakeMailer) {
	t.Helper()
	st := store.NewMemory()
	mailer := &fakeMailer{}
	svc := NewService(st, mailer, Config{JWTSecret: "test-secret"})
	return svc, st, mailer
}

func parseToken(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	return claims
}

func TestSignupAndLogin(t *testing.T) {
	svc, _, _ := newTestService(t)

	user, token, err := svc.Signup(context.Background(), "asha", "asha@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Empty(t, user.Password)

	claims := parseToken(t, token)
	assert.Equal(t, user.Id.Hex(), claims["id"])
	assert.Equal(t, "user", claims["role"])

	logged, token2, err := svc.Login(context.Background(), "asha@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, user.Id, logged.Id)
	assert.NotEmpty(t, token2)
}

func TestSignupValidation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.Signup(context.Background(), "asha", "asha@example.com", "short")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, _, err = svc.Signup(context.Background(), "", "asha@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, _, err = svc.Signup(context.Background(), "asha", "asha@example.com", "hunter2hunter2")
	require.NoError(t, err)
	_, _, err = svc.Signup(context.Background(), "asha2", "asha@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestLoginSameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.Signup(context.Background(), "asha", "asha@example.com", "hunter2hunter2")
	require.NoError(t, err)

	_, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "hunter2hunter2")
	_, _, errWrong := svc.Login(context.Background(), "asha@example.com", "wrong-password")
	assert.ErrorIs(t, errUnknown, apperr.ErrValidation)
	assert.ErrorIs(t, errWrong, apperr.ErrValidation)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestRequestOTPCreatesAccount(t *testing.T) {
	svc, st, mailer := newTestService(t)

	require.NoError(t, svc.RequestOTP(context.Background(), "new@example.com"))

	user, err := st.Users.FindByEmail(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Username)
	assert.Equal(t, mailer.otps["new@example.com"], user.Otp)
	assert.Len(t, user.Otp, 6)
}

func TestRequestOTPMailFailureIsAnError(t *testing.T) {
	svc, _, mailer := newTestService(t)
	mailer.failOTP = errors.New("smtp down")

	err := svc.RequestOTP(context.Background(), "new@example.com")
	assert.EqualError(t, err, "smtp down")
}

func TestVerifyOTP(t *testing.T) {
	svc, st, mailer := newTestService(t)

	require.NoError(t, svc.RequestOTP(context.Background(), "asha@example.com"))
	code := mailer.otps["asha@example.com"]

	_, _, err := svc.VerifyOTP(context.Background(), "asha@example.com", "000000")
	if code == "000000" {
		t.Skip("collided with the generated code")
	}
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	user, token, err := svc.VerifyOTP(context.Background(), "asha@example.com", code)
	require.NoError(t, err)
	assert.Empty(t, user.Otp)
	claims := parseToken(t, token)
	assert.Equal(t, user.Id.Hex(), claims["id"])

	// The code is single-use.
	_, _, err = svc.VerifyOTP(context.Background(), "asha@example.com", code)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	stored, err := st.Users.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Empty(t, stored.Otp)
}

func TestVerifyOTPExpired(t *testing.T) {
	svc, _, mailer := newTestService(t)

	require.NoError(t, svc.RequestOTP(context.Background(), "asha@example.com"))
	code := mailer.otps["asha@example.com"]

	svc.now = func() time.Time { return time.Now().Add(11 * time.Minute) }
	_, _, err := svc.VerifyOTP(context.Background(), "asha@example.com", code)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestAdminLogin(t *testing.T) {
	st := store.NewMemory()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	svc := NewService(st, &fakeMailer{}, Config{
		JWTSecret:         "test-secret",
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: string(hash),
	})

	token, err := svc.AdminLogin("admin@example.com", "admin-pass")
	require.NoError(t, err)
	claims := parseToken(t, token)
	assert.Equal(t, "admin", claims["role"])

	_, err = svc.AdminLogin("admin@example.com", "wrong")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	_, err = svc.AdminLogin("other@example.com", "admin-pass")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestAdminLoginUnconfigured(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.AdminLogin("admin@example.com", "admin-pass")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}
