package identifier

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidIdentifier is returned by Decode when the input is not a
// well-formed product identifier (24 hex characters).
var ErrInvalidIdentifier = errors.New("invalid identifier")

// ID is the store-native product identifier. Everything outside the
// repository layer handles it only through Decode and Hex, so no other
// package depends on the driver's identifier type.
type ID primitive.ObjectID

// Decode parses the external string form of an identifier.
func Decode(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, s)
	}
	return ID(oid), nil
}

// Hex returns the external string form of the identifier, the exact inverse
// of Decode.
func (id ID) Hex() string {
	return primitive.ObjectID(id).Hex()
}

// ObjectID exposes the driver type for the repository layer.
func (id ID) ObjectID() primitive.ObjectID {
	return primitive.ObjectID(id)
}

// New returns a freshly generated identifier. The real store assigns ids on
// insert; this exists for the in-memory repository and for tests.
func New() ID {
	return ID(primitive.NewObjectID())
}

// FromValue recovers an ID from a raw document field, as read back from the
// store.
func FromValue(v any) (ID, bool) {
	switch t := v.(type) {
	case primitive.ObjectID:
		return ID(t), true
	case ID:
		return t, true
	case string:
		id, err := Decode(t)
		return id, err == nil
	default:
		return ID{}, false
	}
}
