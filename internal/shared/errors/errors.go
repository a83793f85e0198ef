package errors

import "errors"

var (
	ErrMissingBotToken     = errors.New("TELEGRAM_BOT_TOKEN environment variable is required")
	ErrUnauthorized        = errors.New("unauthorized user")
	ErrOperatorNotFound    = errors.New("operator not found")
	ErrInvalidRef          = errors.New("invalid channel reference")
	ErrEmptyKey            = errors.New("replacement key must not be empty")
	ErrMissingSeparator    = errors.New("expected input in format from|to")
	ErrUnknownFilter       = errors.New("unknown filter")
	ErrUnknownNamespace    = errors.New("unknown replacement namespace")
	ErrUnknownDocument     = errors.New("unknown settings document")
	ErrInviteNotResolvable = errors.New("invite links cannot be resolved without joining, use /alias")
	ErrNoDeliveredMessage  = errors.New("no delivered message recorded for target")
)
