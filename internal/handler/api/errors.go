package api

import (
	"net/http"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/handler/httperr"
	"homeclean-booking/internal/pkg/errs"
	"homeclean-booking/internal/usecase/commands"
	"homeclean-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errMissingUser      = errs.New("user id missing from context")
	errInvalidPathID    = errs.New("invalid path id")
	errInvalidIdemKey   = errs.New("invalid idempotency key format")
	errInvalidRequest   = errs.New("invalid request body")
	errInvalidListQuery = errs.New("invalid list query")
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// checked in order; the first match wins
var usecaseErrorMappings = []errorMapping{
	{errMissingUser, http.StatusUnauthorized, "Unauthorized"},
	{commands.ErrWizardNotFound, http.StatusNotFound, "Wizard not found"},
	{queries.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{commands.ErrNoManagersAvailable, http.StatusNotFound, "No managers available"},
	{commands.ErrValidationFailed, http.StatusUnprocessableEntity, "Validation failed"},
	{queries.ErrInvalidQuoteRequest, http.StatusUnprocessableEntity, "Invalid quote request"},
	{commands.ErrNotAtConfirmStep, http.StatusConflict, "Wizard is not at the confirmation step"},
	{commands.ErrInvalidTransition, http.StatusConflict, "Action not allowed at the current step"},
	{commands.ErrIdempotencyKeyRequired, http.StatusBadRequest, "Idempotency-Key header required"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{commands.ErrManagerLookupFailed, http.StatusBadGateway, "Manager lookup failed"},
	{commands.ErrServiceDetailTypeNotFound, http.StatusInternalServerError, "Service detail type not configured"},
	{commands.ErrSubmissionFailed, http.StatusInternalServerError, "Reservation submission failed"},
	{commands.ErrSessionStoreFailed, http.StatusServiceUnavailable, "Wizard session store unavailable"},
}

// abortWithUsecaseError translates a usecase error into the error envelope.
// Validation failures carry the offending field as detail.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range usecaseErrorMappings {
		if !errs.Is(err, m.target) {
			continue
		}
		msg := m.message
		var detail any
		var ve *reservation.ValidationError
		if m.status == http.StatusUnprocessableEntity && errs.As(err, &ve) {
			msg = ve.Message
			detail = fieldDetail(ve)
		}
		httperr.AbortWithError(c, m.status, err, msg, detail)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func fieldDetail(ve *reservation.ValidationError) httperr.FieldDetail {
	d := httperr.FieldDetail{Field: ve.Field}
	if ve.Step.IsValid() {
		d.Step = int(ve.Step)
		d.StepName = ve.Step.String()
	}
	return d
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func abortWithMappingError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, errs.Wrap(err, "map response"), "Internal server error", nil)
}
