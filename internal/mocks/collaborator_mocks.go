package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of core.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendPasswordReset(ctx context.Context, to, name, code string) error {
	return m.Called(ctx, to, name, code).Error(0)
}

// MockCache is a mock implementation of core.Cache. A hit is simulated by
// an optional third Return value for Get, copied into dest through JSON.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	if len(args) > 2 && args.Get(2) != nil {
		v := args.Get(2)
		raw, err := json.Marshal(v)
		if err != nil {
			return false, err
		}
		if err := json.Unmarshal(raw, dest); err != nil {
			return false, err
		}
	}
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value any) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}
