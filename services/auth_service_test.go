package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunal22-jpg/nutracia-version-1/models"
	"github.com/kunal22-jpg/nutracia-version-1/utils"
)

const testSecret = "auth-test-secret"

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(newTestDB(t), testSecret, 24*time.Hour, zerolog.Nop())
}

func TestRegisterIssuesWorkingToken(t *testing.T) {
	svc := newAuthService(t)

	userID, token, err := svc.Register(context.Background(), RegisterInput{
		Email:       "a@x.com",
		Password:    "P1!",
		Name:        "Ada",
		HealthGoals: []string{"sleep better"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, userID)
	require.NotEmpty(t, token)

	subject, err := utils.ParseJWT(token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "P1!"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "other"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, svc.db.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc := newAuthService(t)

	userID, _, err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com", Password: "P1!"})
	require.NoError(t, err)

	var user models.User
	require.NoError(t, svc.db.Where("id = ?", userID).First(&user).Error)
	assert.NotEqual(t, "P1!", user.Password)
	assert.True(t, utils.CheckPasswordHash("P1!", user.Password))
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	registeredID, _, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Password: "P1!"})
	require.NoError(t, err)

	userID, token, err := svc.Login(ctx, "a@x.com", "P1!")
	require.NoError(t, err)
	assert.Equal(t, registeredID, userID)
	require.NotEmpty(t, token)

	subject, err := utils.ParseJWT(token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, registeredID, subject)

	_, _, err = svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@x.com", "P1!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
