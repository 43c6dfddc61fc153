package api

import (
	"net/http"

	reqdto "homeclean-booking/internal/handler/dto/request"
	resdto "homeclean-booking/internal/handler/dto/response"
	"homeclean-booking/internal/handler/middleware"
	"homeclean-booking/internal/pkg/errs"
	"homeclean-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	queries queries.ReservationQueries
}

func NewReservationHandler(reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{queries: reservationQueries}
}

// @Summary Get reservation
// @Description Get a submitted reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortWithUsecaseError(c, errMissingUser)
		return
	}
	id, ok := pathUUID(c, "id", "Invalid reservation ID format")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List user reservations
// @Description Newest first, keyset paginated
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (1-100)"
// @Success 200 {object} resdto.ReservationPageResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) GetUserReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortWithUsecaseError(c, errMissingUser)
		return
	}

	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, errs.Mark(err, errInvalidListQuery), "Invalid query parameters")
		return
	}

	items, next, err := h.queries.ListByUser(c.Request.Context(), userID, q.Cursor(), q.Limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromReservationPage(items, next)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
