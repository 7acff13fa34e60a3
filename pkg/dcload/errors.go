/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package dcload

import (
	"errors"
	"fmt"
)

var (
	ErrNoDCFiles     = errors.New("no DC files configured")
	ErrInvalidSchema = errors.New("invalid DC schema")
	ErrTypeNotFound  = errors.New("type not found")
	ErrInvalidValue  = errors.New("invalid value")
)

func errTypeNotFound(name string) error {
	return fmt.Errorf("%w: «%s»", ErrTypeNotFound, name)
}
