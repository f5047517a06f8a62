package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStoreUnavailable matches every StoreError via errors.Is.
var ErrStoreUnavailable = errors.New("booking store unavailable")

// InvalidSeatError reports seat identifiers that are not part of the flight's seat map.
type InvalidSeatError struct {
	Seats []string
}

func (e *InvalidSeatError) Error() string {
	return fmt.Sprintf("seats do not exist on this flight: %s", strings.Join(e.Seats, ", "))
}

// ClassMismatchError reports seats that belong to a different class than requested.
type ClassMismatchError struct {
	Seats     []string
	Requested SeatClass
}

func (e *ClassMismatchError) Error() string {
	return fmt.Sprintf("seats are not %s class: %s", e.Requested, strings.Join(e.Seats, ", "))
}

// CardinalityError reports a seat count that does not match the passenger count.
type CardinalityError struct {
	Seats      int
	Passengers int
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("%d distinct seats requested for %d passengers", e.Seats, e.Passengers)
}

// ConflictError names seats already held by another confirmed booking.
type ConflictError struct {
	Seats []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("seats already booked: %s", strings.Join(e.Seats, ", "))
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// RequestError reports a malformed field of a request, such as a passenger record.
type RequestError struct {
	Field  string
	Reason string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// StoreError wraps an I/O failure of the booking or flight store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }

// WrapStore returns nil for a nil err, otherwise a StoreError. Domain errors pass through untouched.
func WrapStore(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomain(err) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsPermanent reports errors caused by a malformed request; retrying it unchanged cannot succeed.
func IsPermanent(err error) bool {
	var (
		inv *InvalidSeatError
		cm  *ClassMismatchError
		ca  *CardinalityError
		re  *RequestError
	)
	return errors.As(err, &inv) || errors.As(err, &cm) || errors.As(err, &ca) || errors.As(err, &re)
}

// IsDomain reports whether err is one of the engine's typed failures.
func IsDomain(err error) bool {
	return IsPermanent(err) || IsConflict(err) || IsNotFound(err)
}
