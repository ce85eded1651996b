package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio-site/internal/core/cache"
	"portfolio-site/internal/features/carousel/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCache is a mock implementation of cache.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newMiniredisMirror(t *testing.T) (*RedisMirror, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })
	return NewRedisMirror(adapter), mr
}

func TestRedisMirror_RenderAndRead(t *testing.T) {
	mirror, mr := newMiniredisMirror(t)
	ctx := context.Background()

	event := domain.SlideEvent{
		Carousel: "testimonials",
		Index:    2,
		Slide:    domain.Slide{ID: "t-3", Active: true},
		At:       time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, mirror.RenderSlide(event))
	assert.True(t, mr.Exists("carousel:testimonials:active"))

	got, err := mirror.Active(ctx, "testimonials")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.Index)
	assert.Equal(t, "t-3", got.Slide.ID)
	assert.True(t, got.At.Equal(event.At))
}

func TestRedisMirror_ActiveMissing(t *testing.T) {
	mirror, _ := newMiniredisMirror(t)

	got, err := mirror.Active(context.Background(), "projects")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisMirror_Clear(t *testing.T) {
	mirror, mr := newMiniredisMirror(t)
	require.NoError(t, mirror.RenderSlide(domain.SlideEvent{Carousel: "testimonials"}))

	require.NoError(t, mirror.Clear(context.Background(), "testimonials"))
	assert.False(t, mr.Exists("carousel:testimonials:active"))
}

func TestRedisMirror_Errors(t *testing.T) {
	t.Run("SetError", func(t *testing.T) {
		mockCache := new(MockCache)
		mockCache.On("Set", mock.Anything, "carousel:testimonials:active", mock.Anything, time.Duration(0)).
			Return(errors.New("connection refused")).Once()

		err := NewRedisMirror(mockCache).RenderSlide(domain.SlideEvent{Carousel: "testimonials"})
		assert.ErrorContains(t, err, "failed to mirror active slide")
		mockCache.AssertExpectations(t)
	})

	t.Run("GetError", func(t *testing.T) {
		mockCache := new(MockCache)
		mockCache.On("Get", mock.Anything, "carousel:testimonials:active").
			Return(nil, errors.New("connection refused")).Once()

		_, err := NewRedisMirror(mockCache).Active(context.Background(), "testimonials")
		assert.ErrorContains(t, err, "failed to read active slide")
		mockCache.AssertExpectations(t)
	})

	t.Run("CorruptValue", func(t *testing.T) {
		mockCache := new(MockCache)
		mockCache.On("Get", mock.Anything, "carousel:testimonials:active").
			Return([]byte("not-json"), nil).Once()

		_, err := NewRedisMirror(mockCache).Active(context.Background(), "testimonials")
		assert.ErrorContains(t, err, "failed to unmarshal slide event")
	})
}
