// Package errmsg words failures for the user: the status bar shows them
// and startup errors are printed with them.
package errmsg

import "fmt"

// Op names the operation that failed, as a verb phrase.
type Op string

const (
	OpDocumentLoad   Op = "load document"
	OpDocumentReload Op = "reload document"

	OpStateOpen    Op = "open state database"
	OpPositionLoad Op = "restore reading position"
	OpRatioReset   Op = "reset curtain height"

	OpConfigLoad Op = "load configuration"
)

// Error is a failed operation on an optional subject, such as a file.
type Error struct {
	Op      Op
	Subject string
	Err     error
}

func (e *Error) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("Failed to %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", e.Op, e.Subject, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap returns err as an *Error, or nil when err is nil.
func Wrap(op Op, subject string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Subject: subject, Err: err}
}

// Format returns the message for err, or "" when err is nil.
func Format(op Op, err error) string {
	return FormatWith(op, "", err)
}

// FormatWith is Format naming the subject of the operation.
func FormatWith(op Op, subject string, err error) string {
	if err == nil {
		return ""
	}
	return Wrap(op, subject, err).Error()
}
