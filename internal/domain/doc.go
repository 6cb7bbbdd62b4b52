// Package domain contains shared domain types used across entity sub-packages.
// The user account entity and its credential rules live here together with
// the sentinel errors and validation type every layer maps against.
// Conversation types live in domain/chat.
package domain
