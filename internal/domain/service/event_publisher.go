// Package service declares domain services implemented by the infrastructure layer.
package service

import (
	"context"
	"time"
)

// OnboardingEvent is published once an account's onboarding transaction has committed.
type OnboardingEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	AccountID   int64     `json:"account_id"`
	Kind        string    `json:"kind"`
	ProfileID   int64     `json:"profile_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOnboardingEvent publishes an onboarding-completed event
	PublishOnboardingEvent(ctx context.Context, event *OnboardingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
