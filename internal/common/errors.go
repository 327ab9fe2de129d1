package common

import "errors"

var (
	// Repository-level errors.
	ErrObjectExists = errors.New("object already exists")

	// Save validation.
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
	ErrInvalidYear     = errors.New("year must be a positive number")
	ErrUnknownCategory = errors.New("category is not part of the category list")

	// Sync failures surfaced to the caller once.
	ErrImageUpload = errors.New("image upload failed")
	ErrRemoteWrite = errors.New("remote write failed")

	// Vocabulary guards.
	ErrVocabularyInUse = errors.New("value is used by at least one entry")
	ErrBaseCategory    = errors.New("base categories cannot be changed")

	ErrAccessDenied = errors.New("incorrect access code")
)
