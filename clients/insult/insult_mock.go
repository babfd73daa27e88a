package insult

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockInsultClient implements the clients.InsultClient interface for testing
type MockInsultClient struct {
	mock.Mock
}

func (m *MockInsultClient) Generate(ctx context.Context, who string) (string, error) {
	args := m.Called(ctx, who)
	return args.String(0), args.Error(1)
}
