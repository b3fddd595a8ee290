// Copyright (c) 2026 FeeFlow. All rights reserved.

// Package navtest provides a recording [nav.Navigator] for tests.
package navtest

import "github.com/feeflow/portal/internal/nav"

// Recorder records every navigation it receives.
type Recorder struct {
	Routes []nav.Route
}

// Navigate implements [nav.Navigator].
func (r *Recorder) Navigate(route nav.Route) {
	r.Routes = append(r.Routes, route)
}

// Last returns the most recent destination, or "" when nothing was navigated.
func (r *Recorder) Last() nav.Route {
	if len(r.Routes) == 0 {
		return ""
	}
	return r.Routes[len(r.Routes)-1]
}

// Reset forgets all recorded navigations.
func (r *Recorder) Reset() {
	r.Routes = nil
}
