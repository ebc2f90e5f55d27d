// Package cli provides the interactive BrewMart command-line storefront.
//
// It wires configuration, the local key-value store and the session/catalog
// services into an interactive REPL. Typical flow: restore a persisted
// session, greet a returning user, and execute user commands.
//
// Key features:
//   - Signup / Login / Logout with a locally persisted session
//   - List / Search / Filter the product catalog
//   - Add / Edit / Delete / Show products
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
