package service

import "time"

// OnboardingRecorder records the outcome of onboarding attempts.
type OnboardingRecorder interface {
	// RecordOnboarding observes one attempt. outcome is "success" or an error code.
	RecordOnboarding(kind string, outcome string, elapsed time.Duration)
}
