// Copyright (c) 2026 FeeFlow. All rights reserved.

/*
Package nav defines the portal's route table, the Navigator contract the UI
shell implements, and the guards that gate protected screens.

The core never renders screens; it only decides destinations. Everything a
flow produces is a [Route], handed to a [Navigator].
*/
package nav

import "fmt"

// Route is a portal destination, expressed as the screen's path.
type Route string

// # Route Table

const (
	// RouteLogin is the unauthenticated entry point.
	RouteLogin Route = "/"

	// RouteAdmin is the admin console landing.
	RouteAdmin Route = "/admin"

	// RouteStudentSelection is the manual disambiguation screen used when a
	// signed-in principal cannot be bound to a roster record.
	RouteStudentSelection Route = "/student-selection"
)

// StudentRoute returns the detail route for one student record.
func StudentRoute(studentID int64) Route {
	return Route(fmt.Sprintf("/student/%d", studentID))
}

// RoleLoginRoute returns the role-hinted login entry (e.g. "/login/student").
func RoleLoginRoute(role string) Route {
	return Route("/login/" + role)
}

// # Navigator

// Navigator is implemented by the UI shell; the core calls it to move the
// user between screens.
type Navigator interface {
	Navigate(route Route)
}
