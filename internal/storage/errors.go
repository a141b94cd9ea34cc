package storage

import (
	"errors"
	"fmt"
)

var (
	ErrCanteenNotFound = errors.New("canteen not found")
	ErrInvalidUpdate   = errors.New("invalid canteen update")
)

type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidUpdate, e.Field, e.Msg)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidUpdate
}
