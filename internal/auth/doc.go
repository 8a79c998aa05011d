// ABOUTME: Package documentation for the auth package
// ABOUTME: Explains middleware behavior and context propagation

// Package auth gates protected HTTP routes behind bearer-token verification.
//
// Verification itself is delegated through identity.TokenVerifier; this
// package only decides how a request carries its credential and what a
// failure looks like on the wire:
//
//   - no "Bearer " substring in the Authorization header → 400 "Invalid token"
//   - token present but rejected by the verifier → 401 with the error text
//   - verified → the decoded Identity rides the request context
//
// Handlers downstream read the identity with FromContext or MustFromContext.
package auth
