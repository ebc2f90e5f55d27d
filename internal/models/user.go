// Package models defines the data types persisted by the storefront:
// credential records, the current session, and catalog products.
package models

// Credential is a registered account as stored under the "users" key.
// Records are append-only: they are never mutated and never deleted.
// The password is kept in plaintext on purpose; this is a demo store
// with no server boundary to protect.
type Credential struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the currently authenticated identity, mirrored to the
// "currentUser" key. The password is intentionally omitted.
type Session struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
