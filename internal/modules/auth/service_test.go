package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"hotelcore/internal/database"
	"hotelcore/internal/domain"
	jwtsvc "hotelcore/internal/pkg/jwt"
	"hotelcore/internal/repository"
)

func setupTestService(t *testing.T) (*Service, *jwtsvc.Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true},
	)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	j := jwtsvc.New("test-secret", time.Hour)
	svc := NewService(repository.NewUserRepository(db), j)
	return svc, j, db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string, role domain.Role, active bool) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	require.NoError(t, db.Create(&user).Error)
	if !active {
		// default:true means a zero-value create would be silently
		// overridden, so disable explicitly
		require.NoError(t, db.Model(&user).Update("active", false).Error)
		user.Active = false
	}
	return &user
}

func TestLoginIssuesTokenWithRole(t *testing.T) {
	svc, j, db := setupTestService(t)
	ctx := context.Background()

	seedUser(t, db, "manager@example.com", "secret123", domain.RoleManager, true)

	res, err := svc.Login(ctx, LoginRequest{Email: "manager@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)

	claims, err := j.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, string(domain.RoleManager), claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _, db := setupTestService(t)
	ctx := context.Background()

	seedUser(t, db, "staff@example.com", "secret123", domain.RoleUser, true)

	_, err := svc.Login(ctx, LoginRequest{Email: "staff@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _, _ := setupTestService(t)

	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	svc, _, db := setupTestService(t)
	ctx := context.Background()

	seedUser(t, db, "gone@example.com", "secret123", domain.RoleUser, false)

	_, err := svc.Login(ctx, LoginRequest{Email: "gone@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserDisabled)
}
