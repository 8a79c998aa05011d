// ABOUTME: Package documentation for the identity package
// ABOUTME: Explains the gateway's role and the verifier seam

// Package identity implements the identity gateway: it issues and verifies
// the opaque bearer credentials tied to email/password accounts.
//
// The task service never depends on the concrete gateway. It sees only the
// TokenVerifier interface ("verify bearer token, get back the decoded
// identity"), so tests can substitute a fake verifier and the gateway could
// be swapped for a hosted provider without touching the request path.
//
// Tokens are HS256 JWTs with the account email in the "sub" claim.
// Passwords are stored as bcrypt hashes; sign-out is purely client-side
// (a token, once issued, is valid until it expires).
package identity
