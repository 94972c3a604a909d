package register

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

type MockService struct{ mock.Mock }

func (m *MockService) Register(ctx context.Context, req models.DummyUser) (string, bool, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Bool(1), args.Error(2)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "новый пользователь",
			body: `{"name":"Student","email":"student@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, models.DummyUser{Name: "Student", Email: "student@example.com"}).
					Return("64d2f8a9e1b2c3d4e5f60718", true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"inserted_id":"64d2f8a9e1b2c3d4e5f60718"`,
		},
		{
			name: "повторная регистрация с тем же email",
			body: `{"name":"Student","email":"student@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything).Return("64d2f8a9e1b2c3d4e5f60718", false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"user already exists"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"email":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid request body"`,
		},
		{
			name:           "email не проходит валидацию",
			body:           `{"name":"Student","email":"not-an-email"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name: "ошибка сервиса",
			body: `{"name":"Student","email":"student@example.com"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything).Return("", false, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"could not register user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
