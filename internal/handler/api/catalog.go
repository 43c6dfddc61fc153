package api

import (
	"net/http"

	reqdto "homeclean-booking/internal/handler/dto/request"
	resdto "homeclean-booking/internal/handler/dto/response"
	"homeclean-booking/internal/pkg/errs"
	"homeclean-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	queries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{queries: catalogQueries}
}

// @Summary Get service catalog
// @Description Housing types, room size tiers, add-on options and service detail types
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	res, err := resdto.FromCatalog(h.queries.Catalog())
	if err != nil {
		abortWithMappingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Quote a selection
// @Description Price a room tier and option selection without a wizard session
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Selection"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /quotes [post]
func (h *CatalogHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, errs.Mark(err, errInvalidRequest), "Invalid request format")
		return
	}

	quote, err := h.queries.Quote(req.ToQuery())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
