package auth

import "github.com/warden-inc/warden/internal/shared/authorization"

// RoutePolicy is the access metadata attached to a route.
type RoutePolicy struct {
	Public bool
	// RequiredRoles admits any authenticated identity when empty.
	RequiredRoles []authorization.UserRole
}

func PublicRoute() RoutePolicy {
	return RoutePolicy{Public: true}
}

func AuthenticatedRoute() RoutePolicy {
	return RoutePolicy{}
}

func RolesRoute(roles ...authorization.UserRole) RoutePolicy {
	return RoutePolicy{RequiredRoles: roles}
}
