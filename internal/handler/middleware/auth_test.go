//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"queue-engine/internal/domain/staff"
	"queue-engine/internal/handler/middleware"
	usecasemock "queue-engine/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStaffAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	member, err := staff.NewMember(uuid.New(), uuid.New(), staff.RoleOwner)
	require.NoError(t, err)

	testCases := []struct {
		name         string
		header       string
		setupMock    func(v *usecasemock.MockTokenValidator)
		expectCode   int
		expectMember bool
	}{
		{
			name:       "missing header",
			setupMock:  func(v *usecasemock.MockTokenValidator) {},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			setupMock:  func(v *usecasemock.MockTokenValidator) {},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setupMock: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("expired").Return(staff.Member{}, errors.New("token is expired"))
			},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:   "valid token stores the member",
			header: "Bearer good",
			setupMock: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("good").Return(member, nil)
			},
			expectCode:   http.StatusOK,
			expectMember: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			tc.setupMock(validator)

			var got staff.Member
			var found bool
			router := gin.New()
			router.GET("/business/ping", middleware.NewAuthMiddleware(validator).StaffAuth(), func(c *gin.Context) {
				got, found = middleware.GetMember(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/business/ping", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectCode, rec.Code)
			assert.Equal(t, tc.expectMember, found)
			if tc.expectMember {
				assert.Equal(t, member.BusinessID(), got.BusinessID())
				assert.Equal(t, staff.RoleOwner, got.Role())
			}
		})
	}
}

func TestGetMember_Absent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := middleware.GetMember(c)
	assert.False(t, ok)
}
