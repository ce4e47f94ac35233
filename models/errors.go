package models

import "errors"

// Sentinel errors returned by services; the HTTP helper maps them to
// response codes.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrDuplicate           = errors.New("already exists")
	ErrSubscriptionExpired = errors.New("subscription expired")
	ErrArticleLimit        = errors.New("non-subscribed users can publish only one article")
	ErrPaymentIncomplete   = errors.New("payment has not been completed")
)
