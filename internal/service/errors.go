package service

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrInvalidInput     = errors.New("invalid input")
	ErrContractorActive = errors.New("cannot delete active contractor, deactivate first")
)
