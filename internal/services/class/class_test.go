package class

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateClass(ctx context.Context, class models.Class) (string, error) {
	args := m.Called(ctx, class)
	return args.String(0), args.Error(1)
}
func (m *RepoMock) ListClasses(ctx context.Context, email string) ([]*models.Class, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Class), args.Error(1)
}
func (m *RepoMock) ListDetailedClasses(ctx context.Context) ([]bson.M, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}
func (m *RepoMock) UpdateClassStatus(ctx context.Context, id, status, feedback string) (int64, error) {
	args := m.Called(ctx, id, status, feedback)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) RemoveClass(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	req := models.DummyClass{
		Name:            "Swimming",
		InstructorName:  "Coach",
		InstructorEmail: "coach@example.com",
		AvailableSeats:  20,
		Price:           19.99,
	}

	t.Run("занятие создаётся со статусом pending", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateClass", mock.Anything, mock.MatchedBy(func(c models.Class) bool {
			return c.Status == models.StatusPending && c.Students == 0 && c.Name == "Swimming"
		})).Return("64d2f8a9e1b2c3d4e5f60718", nil)

		cache := new(CacheMock)
		cache.On("Invalidate", listCacheKey).Return(nil)

		svc := New(repo, cache, newNoopLogger())
		id, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "64d2f8a9e1b2c3d4e5f60718", id)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("ошибка инвалидации кеша не ломает создание", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateClass", mock.Anything, mock.Anything).Return("64d2f8a9e1b2c3d4e5f60718", nil)

		cache := new(CacheMock)
		cache.On("Invalidate", listCacheKey).Return(errors.New("redis down"))

		svc := New(repo, cache, newNoopLogger())
		_, err := svc.Create(ctx, req)

		require.NoError(t, err)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	classes := []*models.Class{
		{Name: "Swimming", Students: 12},
		{Name: "Archery", Students: 5},
	}

	t.Run("промах кеша, выборка из хранилища и запись в кеш", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ListClasses", mock.Anything, "").Return(classes, nil)

		cache := new(CacheMock)
		cache.On("Get", listCacheKey, mock.Anything).Return(false, nil)
		cache.On("Set", listCacheKey, classes, time.Minute).Return(nil)

		svc := New(repo, cache, newNoopLogger())
		got, err := svc.List(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, classes, got)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("попадание в кеш не обращается к хранилищу", func(t *testing.T) {
		repo := new(RepoMock)

		cache := new(CacheMock)
		cache.On("Get", listCacheKey, mock.Anything).Return(true, nil)

		svc := New(repo, cache, newNoopLogger())
		_, err := svc.List(ctx, "")

		require.NoError(t, err)
		repo.AssertNotCalled(t, "ListClasses", mock.Anything, mock.Anything)
	})

	t.Run("выборка по email идёт мимо кеша", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ListClasses", mock.Anything, "coach@example.com").Return(classes[:1], nil)

		cache := new(CacheMock)

		svc := New(repo, cache, newNoopLogger())
		got, err := svc.List(ctx, "coach@example.com")

		require.NoError(t, err)
		assert.Len(t, got, 1)
		cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := "64d2f8a9e1b2c3d4e5f60718"

	t.Run("одобрение занятия", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("UpdateClassStatus", mock.Anything, id, models.StatusApproved, "").Return(int64(1), nil)

		cache := new(CacheMock)
		cache.On("Invalidate", listCacheKey).Return(nil)

		svc := New(repo, cache, newNoopLogger())
		count, err := svc.UpdateStatus(ctx, id, models.StatusUpdate{Status: models.StatusApproved})

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		repo.AssertExpectations(t)
	})

	t.Run("отзыв переводит занятие в denied независимо от статуса", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("UpdateClassStatus", mock.Anything, id, models.StatusDenied, "not enough detail").
			Return(int64(1), nil)

		cache := new(CacheMock)
		cache.On("Invalidate", listCacheKey).Return(nil)

		svc := New(repo, cache, newNoopLogger())
		count, err := svc.UpdateStatus(ctx, id, models.StatusUpdate{
			Status:   models.StatusApproved,
			Feedback: "not enough detail",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		repo.AssertExpectations(t)
	})

	t.Run("неизвестный статус отклоняется без обращения к хранилищу", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)

		svc := New(repo, cache, newNoopLogger())
		_, err := svc.UpdateStatus(ctx, id, models.StatusUpdate{Status: "archived"})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "UpdateClassStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Remove(t *testing.T) {
	ctx := context.Background()
	id := "64d2f8a9e1b2c3d4e5f60718"

	repo := new(RepoMock)
	repo.On("RemoveClass", mock.Anything, id).Return(int64(1), nil)

	cache := new(CacheMock)
	cache.On("Invalidate", listCacheKey).Return(nil)

	svc := New(repo, cache, newNoopLogger())
	count, err := svc.Remove(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
