// Copyright (c) 2026 FeeFlow. All rights reserved.

package session

import (
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
)

// # Claim Resolution Order

// Claim names consulted when deriving identity from a token, in priority
// order. The first claim present with a non-empty value wins; when the claim
// holds a collection, its first element is taken.
var (
	roleClaims      = []string{"role", "roles", "authorities", "scope"}
	principalClaims = []string{"sub", "username", "email"}
)

// DecodeIdentity derives {role, principal name} from an opaque signed token.
//
// The token is parsed WITHOUT signature verification: the client never holds
// the signing key, and the backend re-verifies the token on every API call.
// Decoding is best-effort by design — a malformed token or missing claims
// never fail the sign-in. Instead the caller-supplied fallbacks apply, the
// role degrades to [RoleUser], and a warning goes to the operator log; the
// end user sees nothing.
func DecodeIdentity(logger *slog.Logger, token string, fallbackRole Role, fallbackName string) Identity {
	if logger == nil {
		logger = slog.Default()
	}

	fallback := Identity{
		Role:          fallbackRole.Normalize(),
		PrincipalName: fallbackName,
	}
	if fallback.Role == "" {
		fallback.Role = RoleUser
	}
	if token == "" {
		return fallback
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		logger.Warn("token_decode_failed_using_fallbacks", slog.Any("error", err))
		return fallback
	}

	identity := Identity{
		Role:          fallback.Role,
		PrincipalName: fallback.PrincipalName,
	}
	if role, ok := firstClaimValue(claims, roleClaims); ok {
		identity.Role = Role(role).Normalize()
	}
	if name, ok := firstClaimValue(claims, principalClaims); ok {
		identity.PrincipalName = name
	}
	return identity
}

// firstClaimValue walks names in order and returns the first non-empty value.
// Collection-valued claims contribute their first element.
func firstClaimValue(claims jwt.MapClaims, names []string) (string, bool) {
	for _, name := range names {
		raw, present := claims[name]
		if !present {
			continue
		}
		if value := stringify(raw); value != "" {
			return value, true
		}
	}
	return "", false
}

// stringify flattens a claim value to a string. Arrays yield their first
// element; scalars are formatted as-is; empty collections yield "".
func stringify(raw any) string {
	switch value := raw.(type) {
	case string:
		return value
	case []any:
		if len(value) == 0 {
			return ""
		}
		return stringify(value[0])
	case []string:
		if len(value) == 0 {
			return ""
		}
		return value[0]
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", value)
	}
}
