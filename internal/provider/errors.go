package provider

import (
	"errors"
	"fmt"
)

// GenericLoadFailure is shown to the user when the provider gave us no
// structured detail to display.
const GenericLoadFailure = "Failed to load family tree"

// NotFoundError indicates the requested family does not exist.
type NotFoundError struct {
	FamilyID string
	Detail   string
}

func (e *NotFoundError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("family %s not found: %s", e.FamilyID, e.Detail)
	}
	return fmt.Sprintf("family %s not found", e.FamilyID)
}

// ServerError indicates the provider answered with a non-success status.
type ServerError struct {
	FamilyID   string
	StatusCode int
	Detail     string
}

func (e *ServerError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("provider returned HTTP %d for family %s: %s", e.StatusCode, e.FamilyID, e.Detail)
	}
	return fmt.Sprintf("provider returned HTTP %d for family %s", e.StatusCode, e.FamilyID)
}

// NetworkError indicates the request never produced a usable response.
type NetworkError struct {
	FamilyID string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to reach provider for family %s: %v", e.FamilyID, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// UserMessage maps a provider error to the message shown to the user. The
// server-supplied detail wins when present; anything else falls back to a
// generic failure string.
func UserMessage(err error) string {
	var nf *NotFoundError
	if errors.As(err, &nf) && nf.Detail != "" {
		return nf.Detail
	}
	var se *ServerError
	if errors.As(err, &se) && se.Detail != "" {
		return se.Detail
	}
	return GenericLoadFailure
}
