package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrArchiveOpen      = errors.New("archive open error")
	ErrUnsupportedBuild = errors.New("unsupported build")
	ErrDecode           = errors.New("decode error")
	ErrStructure        = errors.New("structure error")
	ErrUsage            = errors.New("usage error")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrDecode
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// UnsupportedBuildError reports a header build number that no registered
// decoder claims.
type UnsupportedBuildError struct {
	Build int
}

func (e *UnsupportedBuildError) Error() string {
	return fmt.Sprintf("Unsupported base build: %d", e.Build)
}

// Is reports whether target is ErrUnsupportedBuild.
func (e *UnsupportedBuildError) Is(target error) bool {
	return target == ErrUnsupportedBuild
}

// Usage returns an ErrUsage-tagged error whose message is shown verbatim.
func Usage(message string) error {
	return &usageError{message: message}
}

type usageError struct {
	message string
}

func (e *usageError) Error() string        { return e.message }
func (e *usageError) Is(target error) bool { return target == ErrUsage }

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
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
