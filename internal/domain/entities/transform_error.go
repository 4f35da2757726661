package entities

import (
	"errors"
	"fmt"
)

type FailureKind string

const (
	FailureInputNotFound FailureKind = "input_not_found"
	FailureDecode        FailureKind = "decode"
	FailureTransport     FailureKind = "transport"
	FailureQuota         FailureKind = "quota"
	FailureNoImage       FailureKind = "no_image"
	FailureWrite         FailureKind = "write"
)

var (
	ErrInputNotFound = errors.New("input not found")
	ErrDecode        = errors.New("failed to load input image")
	ErrTransport     = errors.New("image service request failed")
	ErrQuota         = errors.New("service temporarily unavailable due to high demand")
	ErrNoImage       = errors.New("no image data received from Gemini API")
	ErrWrite         = errors.New("failed to write output image")
)

var sentinels = map[FailureKind]error{
	FailureInputNotFound: ErrInputNotFound,
	FailureDecode:        ErrDecode,
	FailureTransport:     ErrTransport,
	FailureQuota:         ErrQuota,
	FailureNoImage:       ErrNoImage,
	FailureWrite:         ErrWrite,
}

// TransformError reports why a single image could not be transformed.
// errors.Is matches it against the sentinel of its kind; quota failures also
// match ErrTransport.
type TransformError struct {
	Kind FailureKind
	Path string
	Err  error
}

func NewTransformError(kind FailureKind, path string, err error) *TransformError {
	return &TransformError{Kind: kind, Path: path, Err: err}
}

func (e *TransformError) Error() string {
	msg := sentinels[e.Kind].Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *TransformError) Unwrap() []error {
	errs := []error{sentinels[e.Kind]}
	if e.Kind == FailureQuota {
		errs = append(errs, ErrTransport)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Retryable reports whether another attempt could succeed without changing the input.
func (e *TransformError) Retryable() bool {
	return e.Kind == FailureTransport || e.Kind == FailureQuota
}

// KindOf extracts the failure kind from err, or "" if err is not a TransformError.
func KindOf(err error) FailureKind {
	var te *TransformError
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}

// WithPath returns err with its TransformError path set, leaving other errors untouched.
func WithPath(err error, path string) error {
	var te *TransformError
	if !errors.As(err, &te) {
		return err
	}
	return &TransformError{Kind: te.Kind, Path: path, Err: te.Err}
}
