package app

import (
	"blogmarket_backend/internal/email"
	"blogmarket_backend/internal/logger"
)

// MockEmailProvider используется для тестов и локальной разработки.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	logger.Info("mock email", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) Validate() error { return nil }
