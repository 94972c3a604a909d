package adminstatus

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/middlewarectx"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

type MockService struct{ mock.Mock }

func (m *MockService) ResolveRole(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func TestAdminStatusHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		ctxEmail       string
		paramEmail     string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "свой email, роль admin",
			ctxEmail:   "admin@example.com",
			paramEmail: "admin@example.com",
			setupMock: func(m *MockService) {
				m.On("ResolveRole", mock.Anything, "admin@example.com").Return(models.RoleAdmin, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"admin":true`,
		},
		{
			name:       "свой email, без роли",
			ctxEmail:   "student@example.com",
			paramEmail: "student@example.com",
			setupMock: func(m *MockService) {
				m.On("ResolveRole", mock.Anything, "student@example.com").Return("", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"admin":false`,
		},
		{
			// Токен на пользователя A, в пути email пользователя B:
			// ответ admin:false без обращения к сервису.
			name:           "чужой email в пути",
			ctxEmail:       "student@example.com",
			paramEmail:     "admin@example.com",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusOK,
			expectedBody:   `"admin":false`,
		},
		{
			name:           "email отсутствует в контексте",
			ctxEmail:       "",
			paramEmail:     "student@example.com",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"unauthorized access"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/users/admin/"+tt.paramEmail, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("email", tt.paramEmail)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.ctxEmail != "" {
				ctx = context.WithValue(ctx, middlewarectx.Email, tt.ctxEmail)
			}
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
