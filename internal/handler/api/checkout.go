package api

import (
	"errors"
	"net/http"

	resdto "workhive/internal/handler/dto/response"
	"workhive/internal/handler/httperr"
	"workhive/internal/handler/middleware"
	"workhive/internal/pkg/errs"
	"workhive/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Checkout
// @Description Submit the cart as a booking and clear the session
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	result, err := h.cmds.Checkout(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoWorkspaceSet):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Select a workspace first",
			})
		case errors.Is(err, errs.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart total is zero",
			})
		case errors.Is(err, errs.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking time range",
			})
		case errors.Is(err, errs.ErrDateUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested dates are already reserved",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}
