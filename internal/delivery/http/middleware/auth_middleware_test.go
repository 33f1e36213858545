package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	"pricewatch/internal/domain/repository"
	"pricewatch/internal/domain/service"
	mockRepo "pricewatch/internal/mocks/repository"
	mockSvc "pricewatch/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))

	return appErr.HTTPCode()
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))
	c := newAuthContext(t, "")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))
	c := newAuthContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, mockRepo.NewMockUserRepository(t))
	c := newAuthContext(t, "Bearer bogus")

	tokenSvc.EXPECT().
		ValidateToken("bogus").
		Return(nil, errors.New("token is malformed"))

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))
}

func TestAuthMiddleware_Authenticate_SetsUserID(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc, mockRepo.NewMockUserRepository(t))
	c := newAuthContext(t, "Bearer good-token")

	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{UserID: "user-1"}, nil)

	nextCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		nextCalled = true
		userID, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, "user-1", userID)

		return nil
	})(c)
	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_RequireAdmin_AdminPasses(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), userRepo)
	c := newAuthContext(t, "")
	c.Set(ContextKeyUserID, "admin-1")

	userRepo.EXPECT().
		FindByID(c.Request().Context(), "admin-1").
		Return(&entity.User{ID: "admin-1", Role: entity.RoleAdmin}, nil)

	nextCalled := false
	err := m.RequireAdmin(func(c echo.Context) error {
		nextCalled = true

		return nil
	})(c)
	require.NoError(t, err)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_RequireAdmin_GeneralUserForbidden(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), userRepo)
	c := newAuthContext(t, "")
	c.Set(ContextKeyUserID, "user-1")

	userRepo.EXPECT().
		FindByID(c.Request().Context(), "user-1").
		Return(&entity.User{ID: "user-1", Role: entity.RoleGeneral}, nil)

	err := m.RequireAdmin(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, appErrorCode(t, err))
}

func TestAuthMiddleware_RequireAdmin_UnknownUserForbidden(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), userRepo)
	c := newAuthContext(t, "")
	c.Set(ContextKeyUserID, "ghost")

	userRepo.EXPECT().
		FindByID(c.Request().Context(), "ghost").
		Return(nil, repository.ErrUserNotFound)

	err := m.RequireAdmin(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, appErrorCode(t, err))
}

func TestAuthMiddleware_RequireAdmin_MissingUserIDUnauthorized(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), mockRepo.NewMockUserRepository(t))
	c := newAuthContext(t, "")

	err := m.RequireAdmin(func(c echo.Context) error { return nil })(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, appErrorCode(t, err))
}
