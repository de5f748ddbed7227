// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/record, domain/notice,
// domain/submission). This root package holds sentinel errors and the typed
// errors shared by every layer.
package domain
