// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 eCommit Contributors

// Package auth implements the credential and session protocol for eCommit.
//
// # Domain Types
//
// Account is the durable record keyed by email, created through NewAccount
// so that repository implementations only ever see validated state.
//
// # Components
//
//   - Hasher - one-way credential digest (legacy SHA-1 or peppered PBKDF2)
//   - Codec - symmetric encryption of session cookie values
//   - Service - registration and login flows
//   - Guard - the per-request authentication gate with its two
//     continuations (render a view, execute an action)
//
// Session state lives entirely client-side: two encrypted cookie values
// holding the account email and its password digest. A session is valid
// exactly as long as the decrypted digest matches the stored one, which
// makes every outstanding session invalid the moment a password changes.
package auth
