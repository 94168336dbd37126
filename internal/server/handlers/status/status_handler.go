package status

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masfiqurnehal/portfolio-backend/internal/server/store"
)

// StatusStore is the slice of the document store the status endpoints use.
type StatusStore interface {
	CreateStatusCheck(ctx context.Context, check *store.StatusCheck) error
	ListStatusChecks(ctx context.Context) ([]*store.StatusCheck, error)
}

type StatusHandler struct {
	store StatusStore
}

func New(store StatusStore) *StatusHandler {
	return &StatusHandler{store: store}
}

// Create handles POST /api/status. It persists a new check and returns the
// stored record including the generated id and timestamp.
func (h *StatusHandler) Create(ctx *gin.Context) {
	var req StatusCheckCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(fmt.Errorf("failed to bind json: %w", err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	check := store.NewStatusCheck(req.ClientName)
	if err := h.store.CreateStatusCheck(ctx, check); err != nil {
		ctx.Error(fmt.Errorf("failed to create status check: %w", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, check)
}

// List handles GET /api/status. At most 1000 records come back, in the
// store's natural order.
func (h *StatusHandler) List(ctx *gin.Context) {
	checks, err := h.store.ListStatusChecks(ctx)
	if err != nil {
		ctx.Error(fmt.Errorf("failed to list status checks: %w", err))
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, checks)
}
