package testutils

import (
	"time"

	"github.com/stretchr/testify/mock"
)

type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendVerificationEmail(email, verificationURL string, expiry time.Duration) error {
	args := m.Called(email, verificationURL, expiry)
	return args.Error(0)
}
