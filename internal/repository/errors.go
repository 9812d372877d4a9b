package repository

import "errors"

var (
	ErrNotFound    = errors.New("record not found")
	ErrEmailExists = errors.New("email already exists")
	ErrTaxIDExists = errors.New("tax id already exists")
	ErrActive      = errors.New("record is active")
)
