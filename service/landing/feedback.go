package landing

import "time"

// FeedbackKind is the transient label shown on the add-to-cart control.
type FeedbackKind string

const (
	FeedbackNone  FeedbackKind = ""
	FeedbackAdded FeedbackKind = "added"
	FeedbackError FeedbackKind = "error"
)

// Default label lifetimes.
const (
	DefaultAddedFeedback = 800 * time.Millisecond
	DefaultErrorFeedback = 900 * time.Millisecond
)

// FeedbackDurations configures how long each label stays up.
type FeedbackDurations struct {
	Added time.Duration
	Error time.Duration
}

// DefaultFeedbackDurations returns the standard lifetimes.
func DefaultFeedbackDurations() FeedbackDurations {
	return FeedbackDurations{Added: DefaultAddedFeedback, Error: DefaultErrorFeedback}
}

func (d FeedbackDurations) of(kind FeedbackKind) time.Duration {
	switch kind {
	case FeedbackAdded:
		return d.Added
	case FeedbackError:
		return d.Error
	}
	return 0
}

// Feedback is a label that expires on its own: once Until has passed it reads as
// FeedbackNone without anyone clearing it.
type Feedback struct {
	Kind  FeedbackKind `json:"kind,omitempty"`
	Until time.Time    `json:"until,omitempty"`
}

// Show starts kind at now.
func (d FeedbackDurations) Show(kind FeedbackKind, now time.Time) Feedback {
	ttl := d.of(kind)
	if ttl <= 0 {
		return Feedback{}
	}
	return Feedback{Kind: kind, Until: now.Add(ttl)}
}

// At returns the label visible at now.
func (f Feedback) At(now time.Time) FeedbackKind {
	if f.Kind == FeedbackNone || !now.Before(f.Until) {
		return FeedbackNone
	}
	return f.Kind
}

// Remaining is how long the label stays visible after now.
func (f Feedback) Remaining(now time.Time) time.Duration {
	if f.At(now) == FeedbackNone {
		return 0
	}
	return f.Until.Sub(now)
}
