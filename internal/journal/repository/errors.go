package repository

import "errors"

var (
	ErrFailedToList   = errors.New("failed to list logs")
	ErrFailedToGet    = errors.New("failed to get log")
	ErrFailedToCreate = errors.New("failed to create log")
	ErrFailedToUpdate = errors.New("failed to update log")
	ErrFailedToDelete = errors.New("failed to delete log")
	ErrFailedToInfo   = errors.New("failed to fetch api info")
)
