package middlewarectx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

type ResolverMock struct{ mock.Mock }

func (m *ResolverMock) ResolveRole(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		ctxEmail       string
		required       string
		setupMock      func(*ResolverMock)
		expectedStatus int
	}{
		{
			name:     "роль совпадает",
			ctxEmail: "admin@example.com",
			required: models.RoleAdmin,
			setupMock: func(m *ResolverMock) {
				m.On("ResolveRole", mock.Anything, "admin@example.com").Return(models.RoleAdmin, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:     "роль не совпадает",
			ctxEmail: "student@example.com",
			required: models.RoleAdmin,
			setupMock: func(m *ResolverMock) {
				m.On("ResolveRole", mock.Anything, "student@example.com").Return("", nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:     "инструктор не админ",
			ctxEmail: "coach@example.com",
			required: models.RoleAdmin,
			setupMock: func(m *ResolverMock) {
				m.On("ResolveRole", mock.Anything, "coach@example.com").Return(models.RoleInstructor, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "email отсутствует в контексте",
			ctxEmail:       "",
			required:       models.RoleAdmin,
			setupMock:      func(_ *ResolverMock) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:     "ошибка разрешения роли",
			ctxEmail: "admin@example.com",
			required: models.RoleAdmin,
			setupMock: func(m *ResolverMock) {
				m.On("ResolveRole", mock.Anything, "admin@example.com").Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := new(ResolverMock)
			tt.setupMock(resolver)

			handler := RequireRole(tt.required, resolver, newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.ctxEmail != "" {
				req = req.WithContext(context.WithValue(req.Context(), Email, tt.ctxEmail))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resolver.AssertExpectations(t)
		})
	}
}
