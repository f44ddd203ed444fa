package api

import (
	"net/http"

	resdto "workhive/internal/handler/dto/response"
	"workhive/internal/handler/httperr"
	"workhive/internal/infra"
	"workhive/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkspaceHandler struct {
	q queries.WorkspaceQueries
}

func NewWorkspaceHandler(q queries.WorkspaceQueries) *WorkspaceHandler {
	return &WorkspaceHandler{q: q}
}

// @Summary Get workspace
// @Description Get a workspace with its category pricing
// @Tags workspaces
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} resdto.WorkspaceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /workspaces/{id} [get]
func (h *WorkspaceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid workspace ID format",
		})
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Workspace not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromWorkspaceView(view))
}

// @Summary List catalog items
// @Description List amenities or beverages available for booking add-ons
// @Tags workspaces
// @Produce json
// @Param kind query string true "Item kind (amenity or beverage)"
// @Success 200 {array} resdto.CatalogItemResponse
// @Failure 400 {object} map[string]string
// @Router /catalog [get]
func (h *WorkspaceHandler) ListCatalog(c *gin.Context) {
	kind := c.Query("kind")
	if kind != "amenity" && kind != "beverage" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "kind must be amenity or beverage",
		})
		return
	}

	items, err := h.q.ListCatalog(c.Request.Context(), kind)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCatalogViews(items))
}
