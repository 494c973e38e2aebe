// Package pubsub publishes domain events to Google Cloud Pub/Sub or to a local push endpoint.
package pubsub

import (
	"strconv"

	"creatorhub/internal/domain/service"
)

// EventTypeAccountOnboarded is the event_type attribute of onboarding events.
const EventTypeAccountOnboarded = "account.onboarded"

// eventAttributes builds the message attributes subscribers filter and trace on.
func eventAttributes(event *service.OnboardingEvent) map[string]string {
	attributes := map[string]string{
		"event_type": EventTypeAccountOnboarded,
		"account_id": strconv.FormatInt(event.AccountID, 10),
		"kind":       event.Kind,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
