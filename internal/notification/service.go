// Package notification provides invitation email delivery.
package notification

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

//go:generate mockgen -destination=mocks/mock_mailer.go -package=mocks clubhub/internal/notification Mailer

// InvitationEmail holds the fields rendered into an invitation message.
type InvitationEmail struct {
	To      string
	OrgName string
	Role    string
	Token   string
}

// Mailer defines the interface for sending invitation emails.
type Mailer interface {
	// SendInvitation delivers an invitation email. Returns error on delivery failure.
	SendInvitation(ctx context.Context, email InvitationEmail) error
}

// MockMailer is a mock implementation of Mailer for development/testing.
type MockMailer struct {
	// SimulatedDelay is the time to simulate email delivery.
	SimulatedDelay time.Duration
	// FailureRate is the probability of failure (0.0 to 1.0) for testing retry logic.
	FailureRate float64
}

// NewMockMailer creates a new MockMailer with default settings.
func NewMockMailer() *MockMailer {
	return &MockMailer{
		SimulatedDelay: 500 * time.Millisecond,
		FailureRate:    0.0, // No failures by default
	}
}

// SendInvitation simulates delivering an invitation email.
func (m *MockMailer) SendInvitation(ctx context.Context, email InvitationEmail) error {
	// Simulate delivery time
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.SimulatedDelay):
	}

	if m.FailureRate > 0 && rand.Float64() < m.FailureRate {
		return errors.New("simulated delivery failure")
	}

	return nil
}
