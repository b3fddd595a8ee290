// Copyright (c) 2026 FeeFlow. All rights reserved.

package login

// IntentKind tags a pending navigation intent.
type IntentKind int

const (
	// IntentNone means no navigation is pending.
	IntentNone IntentKind = iota

	// IntentAdmin resumes at the admin console.
	IntentAdmin

	// IntentStudent resumes at landing resolution for Email.
	IntentStudent
)

// PendingIntent is the navigation deferred while the forced password-change
// sub-flow is open. It is a serializable tag, not a stored callable, so flow
// state remains inspectable and testable.
type PendingIntent struct {
	Kind  IntentKind
	Email string
}
