package models

// ValidationError marks a record that failed its integrity checks before
// reaching the store
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(msg string) error {
	return &ValidationError{msg: msg}
}
