// file: services/mock_console_service.go
package services

import (
	"github.com/stretchr/testify/mock"
)

// Ensure MockConsoleService implements ConsoleServiceInterface
var _ ConsoleServiceInterface = (*MockConsoleService)(nil)

// MockConsoleService is a mock implementation for testing and extends `mock.Mock`
type MockConsoleService struct {
	mock.Mock
}

// Claim (Mocked)
func (m *MockConsoleService) Claim(user string) error {
	args := m.Called(user)
	return args.Error(0)
}

// Release (Mocked)
func (m *MockConsoleService) Release(user string) error {
	args := m.Called(user)
	return args.Error(0)
}

// Holder (Mocked)
func (m *MockConsoleService) Holder() string {
	args := m.Called()
	return args.String(0)
}

// Reset (Mocked)
func (m *MockConsoleService) Reset() {
	m.Called()
}
