package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDatasetName = errors.New("invalid dataset name")
	ErrInvalidRecordID    = errors.New("invalid record ID")
	ErrInvalidFieldName   = errors.New("invalid field name")
	ErrEmptyRequest       = errors.New("invalid empty request")
	ErrForbidden          = errors.New("you do not have the right permissions to access this api")
	ErrIngestionFailed    = errors.New("uploaded file is empty or could not be parsed")
)

// DatasetNotFoundError reports a dataset name with no registry entry.
type DatasetNotFoundError struct {
	Name string
}

func (e *DatasetNotFoundError) Error() string {
	return fmt.Sprintf("there is no api with the name: %s", e.Name)
}

// RecordNotFoundError reports a record id missing from a valid dataset.
type RecordNotFoundError struct {
	RecordID string
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("no record found with the ID: %s", e.RecordID)
}

// UnsupportedMatchModeError reports a match token outside the allow-list.
type UnsupportedMatchModeError struct {
	Token string
}

func (e *UnsupportedMatchModeError) Error() string {
	return fmt.Sprintf("unsupported match mode: %s", e.Token)
}

var (
	ErrDatasetNotFound = func(name string) error { return &DatasetNotFoundError{Name: name} }
	ErrRecordNotFound  = func(recordID string) error { return &RecordNotFoundError{RecordID: recordID} }

	ErrUnsupportedMatchMode = func(token string) error { return &UnsupportedMatchModeError{Token: token} }

	ErrMalformedCacheEntry = func(name string) error {
		return fmt.Errorf("malformed credentials cache entry for api: %s", name)
	}

	// ErrStorage reports a storage fault to the caller with the dataset name and
	// attempted operation only, never the underlying store diagnostics.
	ErrStorage = func(operation, name string) error {
		return fmt.Errorf("error in %s for: %s api", operation, name)
	}
)

// IsNotFound reports whether err is a missing dataset or a missing record.
func IsNotFound(err error) bool {
	var dErr *DatasetNotFoundError
	if errors.As(err, &dErr) {
		return true
	}

	var rErr *RecordNotFoundError

	return errors.As(err, &rErr)
}

// IsBadRequest reports whether err was caused by invalid caller input.
func IsBadRequest(err error) bool {
	var mErr *UnsupportedMatchModeError
	if errors.As(err, &mErr) {
		return true
	}

	return errors.Is(err, ErrEmptyRequest) ||
		errors.Is(err, ErrInvalidRecordID) ||
		errors.Is(err, ErrInvalidFieldName) ||
		errors.Is(err, ErrInvalidDatasetName) ||
		errors.Is(err, ErrIngestionFailed)
}
