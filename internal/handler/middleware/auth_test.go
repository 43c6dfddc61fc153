//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"homeclean-booking/internal/domain/user"
	"homeclean-booking/internal/handler/middleware"
	"homeclean-booking/internal/pkg/clock"
	"homeclean-booking/internal/pkg/jwt"
	"homeclean-booking/internal/usecase"
	"homeclean-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	jwtSvc *jwt.Service
	clk    *clock.MockClock
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.clk = clock.NewMockClock(time.Now())
	s.jwtSvc = jwt.NewService("middleware-secret", time.Hour, s.clk)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtSvc))

	echo := func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID.String(), "role": string(role)})
	}
	s.router.GET("/me", auth.RequireAuth(), echo)
	s.router.GET("/book", auth.RequireAuth(), auth.RequireBookingRole(), echo)
	s.router.GET("/ws", auth.RequireAuthWS(), echo)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) token(role user.Role) (uuid.UUID, string) {
	id := uuid.New()
	token, err := s.jwtSvc.GenerateToken(id, role)
	s.Require().NoError(err)
	return id, token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: claims land in the context", func() {
		id, token := s.token(user.RoleCustomer)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id.String(), body["userId"])
		s.Equal("customer", body["role"])
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 on a forged token", func() {
		other := jwt.NewService("another-secret", time.Hour, s.clk)
		token, err := other.GenerateToken(uuid.New(), user.RoleCustomer)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 401 once expired", func() {
		_, token := s.token(user.RoleCustomer)
		s.clk.Add(2 * time.Hour)
		defer s.clk.Add(-2 * time.Hour)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireBookingRole() {
	cases := []struct {
		role       user.Role
		expectCode int
	}{
		{user.RoleCustomer, http.StatusOK},
		{user.RoleAdmin, http.StatusOK},
		{user.RoleManager, http.StatusForbidden},
	}
	for _, tc := range cases {
		s.Run(string(tc.role), func() {
			_, token := s.token(tc.role)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/book", nil, token)
			s.Equal(tc.expectCode, rec.Code)
		})
	}
}

func (s *AuthMiddlewareTestSuite) TestRequireAuthWS() {
	id, token := s.token(user.RoleCustomer)

	s.Run("query parameter is accepted", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ws?access_token="+token, nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id.String(), body["userId"])
	})

	s.Run("query parameter is ignored on plain routes", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me?access_token="+token, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
