package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// writeError aborts the request with the status and body for err.
func writeError(c *gin.Context, err error) {
	status, body := errorBody(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

func badRequest(c *gin.Context, field, reason string) {
	writeError(c, &domain.RequestError{Field: field, Reason: reason})
}

func errorBody(err error) (int, errorResponse) {
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
		return http.StatusConflict, errorResponse{
			Error:   err.Error(),
			Code:    "seat_conflict",
			Details: map[string]any{"conflicting_seats": conflict.Seats},
		}
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   err.Error(),
			Code:    "invalid_seat",
			Details: map[string]any{"seats": invalid.Seats},
		}
	case errors.As(err, &mismatch):
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   err.Error(),
			Code:    "class_mismatch",
			Details: map[string]any{"seats": mismatch.Seats, "class": mismatch.Requested},
		}
	case errors.As(err, &count):
		return http.StatusUnprocessableEntity, errorResponse{
			Error:   err.Error(),
			Code:    "seat_count_mismatch",
			Details: map[string]any{"seats": count.Seats, "passengers": count.Passengers},
		}
	case errors.As(err, &request):
		return http.StatusBadRequest, errorResponse{
			Error:   err.Error(),
			Code:    "invalid_request",
			Details: map[string]any{"field": request.Field},
		}
	case errors.As(err, &notFound):
		return http.StatusNotFound, errorResponse{
			Error:   err.Error(),
			Code:    "not_found",
			Details: map[string]any{"entity": notFound.Entity, "id": notFound.ID},
		}
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, errorResponse{Error: domain.ErrStoreUnavailable.Error(), Code: "store_unavailable"}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal error", Code: "internal"}
	}
}
