// Copyright (c) 2026 FeeFlow. All rights reserved.

/*
Package landing decides the post-login destination for a student principal.

Identity-to-record binding is best-effort, not authoritative: the token's role
claim already granted access, so a roster entry that cannot be matched (or a
roster that cannot be fetched) is "ambiguous identity, let the user pick" —
never a hard error.
*/
package landing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/feeflow/portal/internal/nav"
	"github.com/feeflow/portal/internal/roster"
)

// Resolver binds a signed-in email to a roster record and navigates there.
type Resolver struct {
	roster    *roster.Client
	navigator nav.Navigator
	logger    *slog.Logger
}

// NewResolver constructs a [Resolver].
func NewResolver(rosterClient *roster.Client, navigator nav.Navigator, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		roster:    rosterClient,
		navigator: navigator,
		logger:    logger.With(slog.String("component", "landing")),
	}
}

// Resolve navigates to the matched student's detail screen, or to the manual
// selection screen when no record matches or the roster cannot be read. The
// chosen destination is returned for the caller's benefit; lookup failures
// are logged for operators and never surfaced.
func (r *Resolver) Resolve(ctx context.Context, email string) nav.Route {
	destination := nav.RouteStudentSelection

	students, err := r.roster.List(ctx)
	if err != nil {
		r.logger.Warn("roster_lookup_degraded_to_manual_selection", slog.Any("error", err))
	} else if match := matchByEmail(students, email); match != nil {
		destination = nav.StudentRoute(match.ID)
	}

	r.navigator.Navigate(destination)
	return destination
}

// matchByEmail performs a case-insensitive exact match on email.
func matchByEmail(students []roster.Student, email string) *roster.Student {
	needle := strings.ToLower(email)
	for i := range students {
		if strings.ToLower(students[i].Email) == needle {
			return &students[i]
		}
	}
	return nil
}
