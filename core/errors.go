package core

import (
	"errors"
)

// Command parsing errors
var (
	ErrMissingTarget  = errors.New("missing insult target")
	ErrInvalidMention = errors.New("invalid user mention")
)

// Discord lookup and send errors
var (
	ErrLookupNotFound  = errors.New("discord user not found")
	ErrLookupForbidden = errors.New("discord user lookup forbidden")
	ErrLookupTransport = errors.New("discord user lookup failed")
	ErrSendForbidden   = errors.New("discord message send forbidden")
)

// Insult API errors
var (
	ErrRemoteAPINonSuccess = errors.New("insult API returned non-success status")
	ErrRemoteAPITransport  = errors.New("insult API request failed")
)

// IsLookupError checks if an error came from resolving a Discord user
func IsLookupError(err error) bool {
	return errors.Is(err, ErrLookupNotFound) ||
		errors.Is(err, ErrLookupForbidden) ||
		errors.Is(err, ErrLookupTransport)
}

// IsParseError checks if an error came from parsing an insult command
func IsParseError(err error) bool {
	return errors.Is(err, ErrMissingTarget) || errors.Is(err, ErrInvalidMention)
}
