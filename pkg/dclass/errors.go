/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dclass

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrIncompatibleError = errors.New("incompatible")

func ErrIncompatible(msg string, args ...any) error {
	return EnrichError(ErrIncompatibleError, msg, args...)
}

var ErrOutOfBoundsError = errors.New("out of bounds")

func ErrOutOfBounds(msg string, args ...any) error {
	return EnrichError(ErrOutOfBoundsError, msg, args...)
}

// Field addition failures. Each one wraps one of the generic errors above,
// so callers may test either the precise or the generic condition.
var (
	ErrFieldExists          = ErrAlreadyExists("field with the same name")
	ErrUnnamedField         = ErrInvalid("unnamed field")
	ErrConstructorNotFirst  = ErrInvalid("constructor must be the first field")
	ErrMolecularConstructor = ErrIncompatible("molecular field as constructor")
	ErrMolecularInStruct    = ErrIncompatible("molecular field in struct")
	ErrMethodInStruct       = ErrIncompatible("method field in struct")
	ErrNestedMolecular      = ErrIncompatible("molecular field inside molecular field")
	ErrKeywordsMismatch     = ErrIncompatible("molecular atoms with different keywords")
	ErrParentExists         = ErrAlreadyExists("parent class")
	ErrNotAClass            = ErrIncompatible("parent is not a class")
	ErrParameterExists      = ErrAlreadyExists("parameter with the same name")
	ErrMethodParameter      = ErrIncompatible("method type as parameter")
	ErrNotAStruct           = ErrIncompatible("type is not a struct")
	ErrNotAMethod           = ErrIncompatible("type is not a method")
	ErrAnonymous            = ErrInvalid("anonymous type can not be registered")
	ErrRegistered           = ErrAlreadyExists("type is already registered")
)

func ErrNameBound(name string, b Binding) error {
	return ErrAlreadyExists("name «%s» is bound to %v", name, b)
}

func ErrKeywordNotDeclared(kw string) error {
	return ErrNotFound("keyword «%s»", kw)
}

var ErrBuilt = errors.New("schema document is already built")
