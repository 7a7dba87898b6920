package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingFile   = errors.New("missing file")
	ErrMissingColumn = errors.New("missing column")

	// ErrMalformedValue marks input whose structure cannot be processed, such
	// as join columns that collide after suffixing. Unparsable fake cells are
	// coerced to 0 and never reported with it.
	ErrMalformedValue = errors.New("malformed value")

	ErrCopyFailure   = errors.New("copy failure")
	ErrConfiguration = errors.New("configuration error")
	ErrBusy          = errors.New("another curator run is active")
	ErrUnexpected    = errors.New("unexpected failure")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrUnexpected
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Kind returns a short classification label for err. Errors carrying none of
// the known markers are reported as "unexpected".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingFile):
		return "missing_file"
	case errors.Is(err, ErrMissingColumn):
		return "missing_column"
	case errors.Is(err, ErrMalformedValue):
		return "malformed_value"
	case errors.Is(err, ErrCopyFailure):
		return "copy_failure"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrBusy):
		return "busy"
	default:
		return "unexpected"
	}
}

// Annotate prefixes err with stage context. Errors that already carry one of
// the markers above keep it; anything else is tagged ErrUnexpected.
func Annotate(stage, operation string, err error) error {
	if err == nil {
		return nil
	}
	if Kind(err) != "unexpected" {
		return fmt.Errorf("%s: %w", buildDetail(stage, operation, ""), err)
	}
	return Wrap(ErrUnexpected, stage, operation, "", err)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "stage failure"
	}
	return strings.Join(parts, ": ")
}
