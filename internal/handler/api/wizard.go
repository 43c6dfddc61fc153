package api

import (
	"io"
	"net/http"

	reqdto "homeclean-booking/internal/handler/dto/request"
	resdto "homeclean-booking/internal/handler/dto/response"
	"homeclean-booking/internal/handler/middleware"
	"homeclean-booking/internal/pkg/errs"
	"homeclean-booking/internal/usecase/commands"
	"homeclean-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type WizardHandler struct {
	commands commands.WizardCommands
	queries  queries.WizardQueries
}

func NewWizardHandler(wizardCommands commands.WizardCommands, wizardQueries queries.WizardQueries) *WizardHandler {
	return &WizardHandler{
		commands: wizardCommands,
		queries:  wizardQueries,
	}
}

// @Summary Start reservation wizard
// @Description Open a wizard session seeded with optional initial data
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartWizardRequest false "Initial draft data"
// @Success 201 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /wizards [post]
func (h *WizardHandler) Start(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req reqdto.StartWizardRequest
	// an empty body starts from the defaults
	if err := c.ShouldBindJSON(&req); err != nil && !errs.Is(err, io.EOF) {
		abortBadRequest(c, errs.Mark(err, errInvalidRequest), "Invalid request format")
		return
	}

	view, err := h.commands.Start(c.Request.Context(), userID, req.InitialData.ToPatch())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromWizardView(view)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Get wizard
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} httperr.Response
// @Router /wizards/{id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	userID, wizardID, ok := h.ids(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), userID, wizardID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromWizardView(view)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update wizard draft
// @Description Partially update the draft; absent fields are left untouched
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param request body reqdto.DraftFields true "Draft fields"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /wizards/{id} [patch]
func (h *WizardHandler) Update(c *gin.Context) {
	userID, wizardID, ok := h.ids(c)
	if !ok {
		return
	}

	var req reqdto.DraftFields
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, errs.Mark(err, errInvalidRequest), "Invalid request format")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), userID, wizardID, req.ToPatch())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromWizardView(view)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Discard wizard
// @Tags wizards
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /wizards/{id} [delete]
func (h *WizardHandler) Discard(c *gin.Context) {
	userID, wizardID, ok := h.ids(c)
	if !ok {
		return
	}

	if err := h.commands.Discard(c.Request.Context(), userID, wizardID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Advance wizard
// @Description Validate the current step and move forward. Leaving the manager step without a manager triggers automatic assignment.
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.NextResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /wizards/{id}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	userID, wizardID, ok := h.ids(c)
	if !ok {
		return
	}

	result, err := h.commands.Next(c.Request.Context(), userID, wizardID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromNextResult(result)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Go back one step
// @Description At the first step the wizard is exited and its session discarded
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.PrevResponse
// @Failure 404 {object} httperr.Response
// @Router /wizards/{id}/prev [post]
func (h *WizardHandler) Prev(c *gin.Context) {
	userID, wizardID, ok := h.ids(c)
	if !ok {
		return
	}

	result, err := h.commands.Prev(c.Request.Context(), userID, wizardID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromPrevResult(result)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Toggle add-on option
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param optionId path string true "Option ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 422 {object} httperr.Response
// @Router /wizards/{id}/options/{optionId}/toggle [post]
func (h *WizardHandler) ToggleOption(c *gin.Context) {
	userID, wizardID, ok := h.ids(c)
	if !ok {
		return
	}

	view, err := h.commands.ToggleOption(c.Request.Context(), userID, wizardID, c.Param("optionId"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromWizardView(view)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Set add-on count
// @Description Out-of-range counts are ignored and the draft is returned unchanged
// @Tags wizards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param optionId path string true "Option ID"
// @Param request body reqdto.SetOptionCountRequest true "Count"
// @Success 200 {object} resdto.WizardResponse
// @Failure 422 {object} httperr.Response
// @Router /wizards/{id}/options/{optionId}/count [put]
func (h *WizardHandler) SetOptionCount(c *gin.Context) {
	userID, wizardID, ok := h.ids(c)
	if !ok {
		return
	}

	var req reqdto.SetOptionCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, errs.Mark(err, errInvalidRequest), "Invalid request format")
		return
	}

	view, err := h.commands.SetOptionCount(c.Request.Context(), userID, wizardID, c.Param("optionId"), *req.Count)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromWizardView(view)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Look up managers
// @Description Query available managers for the drafted slot. Only at the manager step with chooseManager set.
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /wizards/{id}/managers [post]
func (h *WizardHandler) LookupManagers(c *gin.Context) {
	userID, wizardID, ok := h.ids(c)
	if !ok {
		return
	}

	view, err := h.commands.LookupManagers(c.Request.Context(), userID, wizardID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromWizardView(view)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Select manager
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param managerId path string true "Manager UUID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 422 {object} httperr.Response
// @Router /wizards/{id}/managers/{managerId} [post]
func (h *WizardHandler) SelectManager(c *gin.Context) {
	userID, wizardID, ok := h.ids(c)
	if !ok {
		return
	}

	view, err := h.commands.SelectManager(c.Request.Context(), userID, wizardID, c.Param("managerId"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromWizardView(view)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Submit reservation
// @Description Submit the confirmed draft. Replays of the same Idempotency-Key return the original reservation.
// @Tags wizards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wizard ID"
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Success 201 {object} resdto.SubmitResponse
// @Success 200 {object} resdto.SubmitResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /wizards/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	userID, wizardID, ok := h.ids(c)
	if !ok {
		return
	}

	key, ok := idempotencyKey(c)
	if !ok {
		return
	}

	outcome, err := h.commands.Submit(c.Request.Context(), userID, wizardID, key)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if outcome.IsReplayed {
		status = http.StatusOK
	}
	res, err := resdto.FromSubmitOutcome(outcome)
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(status, res)
}

func (h *WizardHandler) userID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortWithUsecaseError(c, errMissingUser)
	}
	return userID, ok
}

func (h *WizardHandler) ids(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := h.userID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	wizardID, ok := pathUUID(c, "id", "Invalid wizard ID format")
	return userID, wizardID, ok
}

func pathUUID(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortBadRequest(c, errs.Mark(err, errInvalidPathID), msg)
		return uuid.Nil, false
	}
	return id, true
}

func idempotencyKey(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		abortWithUsecaseError(c, commands.ErrIdempotencyKeyRequired)
		return uuid.Nil, false
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		abortBadRequest(c, errs.Mark(err, errInvalidIdemKey), "Invalid idempotency key format")
		return uuid.Nil, false
	}
	return key, true
}
