package domain

import "fmt"

// MalformedRecordError means a raw supplier record is missing a required
// field. The record is dropped; the rest of the batch is unaffected.
type MalformedRecordError struct {
	Supplier string
	Field    string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s: malformed record: required field %q missing", e.Supplier, e.Field)
}

// TypeMismatchError means a field was present but had the wrong shape,
// e.g. a non-list where an image gallery is expected. Fatal to the record,
// not to the batch.
type TypeMismatchError struct {
	Supplier string
	Field    string
	Want     string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: field %q is not a %s", e.Supplier, e.Field, e.Want)
}
