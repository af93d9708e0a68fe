package domain

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrAuthentication    = errors.New("unauthorized access")
	ErrAuthorization     = errors.New("forbidden access")
	ErrValidation        = errors.New("invalid request")
	ErrInvalidTransition = errors.New("order cannot move to the requested status")
	ErrTooManyAttempts   = errors.New("too many failed login attempts")
	ErrPaymentFailed     = errors.New("payment processor rejected the request")
	ErrProviderDown      = errors.New("payment processor is currently unavailable")
)

// ParseID converts a path identifier into a document id.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q", ErrValidation, hex)
	}
	return id, nil
}
