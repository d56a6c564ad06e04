// Package otp generates short-lived numeric one-time passwords.
//
// These are delivery codes (sent over email) rather than TOTP secrets: each
// code is drawn fresh, stored alongside the account it protects, and consumed
// on first successful verification.
package otp
