package rpc

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain is set on every ErrorInfo detail.
const ErrorDomain = "seatbooking"

// Reasons carried in ErrorInfo.
const (
	ReasonSeatConflict  = "SEAT_CONFLICT"
	ReasonInvalidSeat   = "INVALID_SEAT"
	ReasonClassMismatch = "CLASS_MISMATCH"
	ReasonCardinality   = "SEAT_COUNT_MISMATCH"
	ReasonInvalidField  = "INVALID_FIELD"
	ReasonNotFound      = "NOT_FOUND"
)

// ToStatus converts a domain error into a gRPC status error. Status errors pass through.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var (
		conflict *domain.ConflictError
		invalid  *domain.InvalidSeatError
		mismatch *domain.ClassMismatchError
		count    *domain.CardinalityError
		request  *domain.RequestError
		notFound *domain.NotFoundError
	)
	switch {
	case errors.As(err, &conflict):
		return withInfo(codes.Aborted, err, ReasonSeatConflict, map[string]string{"seats": strings.Join(conflict.Seats, ",")})
	case errors.As(err, &invalid):
		return withInfo(codes.InvalidArgument, err, ReasonInvalidSeat, map[string]string{"seats": strings.Join(invalid.Seats, ",")})
	case errors.As(err, &mismatch):
		return withInfo(codes.FailedPrecondition, err, ReasonClassMismatch, map[string]string{
			"seats": strings.Join(mismatch.Seats, ","),
			"class": string(mismatch.Requested),
		})
	case errors.As(err, &count):
		return withInfo(codes.InvalidArgument, err, ReasonCardinality, map[string]string{
			"seats":      strconv.Itoa(count.Seats),
			"passengers": strconv.Itoa(count.Passengers),
		})
	case errors.As(err, &request):
		return withInfo(codes.InvalidArgument, err, ReasonInvalidField, map[string]string{"field": request.Field})
	case errors.As(err, &notFound):
		return withInfo(codes.NotFound, err, ReasonNotFound, map[string]string{"entity": notFound.Entity, "id": notFound.ID})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, domain.ErrStoreUnavailable.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func withInfo(code codes.Code, err error, reason string, metadata map[string]string) error {
	st := status.New(code, err.Error())
	detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   ErrorDomain,
		Metadata: metadata,
	})
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// ErrorInfo returns the ErrorInfo detail of a status error, if any.
func ErrorInfo(err error) *errdetails.ErrorInfo {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info
		}
	}
	return nil
}
