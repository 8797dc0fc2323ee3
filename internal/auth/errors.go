package auth

import (
	"strings"

	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
)

// Provider error codes surfaced by the identity provider
const (
	CodeWeakPassword       = "auth/weak-password"
	CodeEmailInUse         = "auth/email-already-in-use"
	CodeInvalidEmail       = "auth/invalid-email"
	CodeUserNotFound       = "auth/user-not-found"
	CodeWrongPassword      = "auth/wrong-password"
	CodeInvalidCredential  = "auth/invalid-credential"
	CodeUserDisabled       = "auth/user-disabled"
	CodeTooManyRequests    = "auth/too-many-requests"
	CodeNetworkFailed      = "auth/network-request-failed"
	CodePopupClosed        = "auth/popup-closed-by-user"
	CodeInvalidActionCode  = "auth/invalid-action-code"
	CodeExpiredActionCode  = "auth/expired-action-code"
	CodeMissingEmail       = "auth/missing-email"
	CodeRequiresRecentAuth = "auth/requires-recent-login"
)

var messages = map[string]string{
	CodeWeakPassword:       "Password must be at least 6 characters long.",
	CodeEmailInUse:         "An account with this email already exists.",
	CodeInvalidEmail:       "Please enter a valid email address.",
	CodeUserNotFound:       "No account found with this email.",
	CodeWrongPassword:      "Incorrect password. Please try again.",
	CodeInvalidCredential:  "Invalid email or password.",
	CodeUserDisabled:       "This account has been disabled.",
	CodeTooManyRequests:    "Too many attempts. Please try again later.",
	CodeNetworkFailed:      vgcerr.GenericNetworkMessage,
	CodePopupClosed:        "Sign-in was cancelled before it completed.",
	CodeInvalidActionCode:  "This sign-in link is invalid or has already been used.",
	CodeExpiredActionCode:  "This sign-in link has expired. Please request a new one.",
	CodeMissingEmail:       "Please enter the email address you used to request the sign-in link.",
	CodeRequiresRecentAuth: "Please sign in again to complete this action.",
}

// Message returns the user-facing text for a provider error code.
// Unmapped codes fall back to the raw provider message.
func Message(code, raw string) string {
	if msg, ok := messages[strings.TrimSpace(code)]; ok {
		return msg
	}
	if raw != "" {
		return raw
	}
	return vgcerr.GenericNetworkMessage
}

// Known reports whether code has a mapped message
func Known(code string) bool {
	_, ok := messages[strings.TrimSpace(code)]
	return ok
}

// MapError converts a provider failure into an application error
func MapError(code, raw string) *vgcerr.Error {
	errCode := vgcerr.CodeUnauthenticated
	switch code {
	case CodeWeakPassword, CodeInvalidEmail, CodeMissingEmail:
		errCode = vgcerr.CodeInvalidArgument
	case CodeEmailInUse:
		errCode = vgcerr.CodeAlreadyExists
	case CodeUserNotFound:
		errCode = vgcerr.CodeNotFound
	case CodeUserDisabled:
		errCode = vgcerr.CodePermissionDenied
	case CodeTooManyRequests, CodeNetworkFailed:
		errCode = vgcerr.CodeUnavailable
	}

	return vgcerr.New(errCode, Message(code, raw)).
		WithMeta("auth_code", code)
}
