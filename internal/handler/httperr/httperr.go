package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"venue-desk/internal/domain/assignment"
	"venue-desk/internal/domain/catalog"
	"venue-desk/internal/domain/club"
	"venue-desk/internal/domain/event"
	"venue-desk/internal/domain/place"
	"venue-desk/internal/domain/reservation"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
	usecatalog "venue-desk/internal/usecase/catalog"
	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/queries"
	"venue-desk/internal/usecase/shared"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithBindError reports a request that failed binding or validation.
func AbortWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		AbortWithError(c, http.StatusBadRequest, err, "Validation failed", fields)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

type rule struct {
	target error
	status int
}

var rules = []rule{
	{shared.ErrNotConfirmed, http.StatusPreconditionRequired},

	{queries.ErrInvalidCursor, http.StatusBadRequest},
	{catalog.ErrUnknownKind, http.StatusBadRequest},
	{usecatalog.ErrOwnerRequired, http.StatusBadRequest},
	{usecatalog.ErrIndexOutOfRange, http.StatusBadRequest},
	{commands.ErrNothingSelected, http.StatusBadRequest},
	{reservation.ErrInvalidTimeSlot, http.StatusBadRequest},
	{reservation.ErrStartInPast, http.StatusBadRequest},
	{event.ErrInvalidScope, http.StatusBadRequest},
	{assignment.ErrInvalidState, http.StatusBadRequest},

	{queries.ErrPlaceNotFound, http.StatusNotFound},
	{queries.ErrReservationNotFound, http.StatusNotFound},
	{queries.ErrEventNotFound, http.StatusNotFound},
	{queries.ErrAssignmentNotFound, http.StatusNotFound},
	{queries.ErrClubNotFound, http.StatusNotFound},
	{commands.ErrPlaceNotFound, http.StatusNotFound},
	{commands.ErrReservationNotFound, http.StatusNotFound},
	{commands.ErrEventNotFound, http.StatusNotFound},
	{commands.ErrAssignmentNotFound, http.StatusNotFound},
	{commands.ErrClubNotFound, http.StatusNotFound},
	{usecatalog.ErrItemNotFound, http.StatusNotFound},
	{usecatalog.ErrOwnerNotFound, http.StatusNotFound},

	{reservation.ErrPlaceBusy, http.StatusConflict},
	{catalog.ErrDuplicateName, http.StatusConflict},
	{place.ErrDuplicateArea, http.StatusConflict},

	{commands.ErrReferenceNotFound, http.StatusUnprocessableEntity},
	{place.ErrAreaOutsidePlace, http.StatusUnprocessableEntity},
	{assignment.ErrInvalidTransition, http.StatusUnprocessableEntity},
	{assignment.ErrCompletedReadOnly, http.StatusUnprocessableEntity},
	{reservation.ErrCommentTooLong, http.StatusUnprocessableEntity},
	{event.ErrEmptyTitle, http.StatusUnprocessableEntity},
	{event.ErrTitleTooLong, http.StatusUnprocessableEntity},
	{event.ErrDescriptionTooLong, http.StatusUnprocessableEntity},
	{event.ErrMissingStartTime, http.StatusUnprocessableEntity},
	{assignment.ErrDescriptionTooLong, http.StatusUnprocessableEntity},
	{assignment.ErrMissingDeadline, http.StatusUnprocessableEntity},
	{club.ErrInvalidRule, http.StatusUnprocessableEntity},
	{club.ErrInvalidDuration, http.StatusUnprocessableEntity},
	{club.ErrMissingFirstTime, http.StatusUnprocessableEntity},
	{catalog.ErrEmptyName, http.StatusUnprocessableEntity},
	{catalog.ErrNameTooLong, http.StatusUnprocessableEntity},

	{commands.ErrInvalidCredentials, http.StatusUnauthorized},
}

// Status maps a use-case error to an HTTP status. Repository errors that
// escape unclassified fall back on their kind.
func Status(err error) int {
	for _, r := range rules {
		if errs.Is(err, r.target) {
			return r.status
		}
	}
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return http.StatusNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return http.StatusConflict
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithUseCaseError picks the status from err. Internal failures get a
// generic message; the rest expose the sentinel text.
func AbortWithUseCaseError(c *gin.Context, err error, msg string) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		AbortWithError(c, status, err, "Internal server error", nil)
		return
	}
	AbortWithError(c, status, err, msg, publicReason(err))
}

func publicReason(err error) any {
	for _, r := range rules {
		if errs.Is(err, r.target) {
			return gin.H{"reason": r.target.Error()}
		}
	}
	return nil
}
