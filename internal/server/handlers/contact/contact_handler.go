package contact

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masfiqurnehal/portfolio-backend/internal/server/email"
	"github.com/masfiqurnehal/portfolio-backend/internal/server/store"
)

// ContactStore is the slice of the document store the contact endpoint uses.
type ContactStore interface {
	CreateContactMessage(ctx context.Context, msg *store.ContactMessage) error
}

type ContactHandler struct {
	store  ContactStore
	mailer email.Mailer
}

func New(store ContactStore, mailer email.Mailer) *ContactHandler {
	return &ContactHandler{
		store:  store,
		mailer: mailer,
	}
}

// Submit handles POST /api/contact. Persistence decides the outcome; the
// notification send is best-effort and only logged. Store failures are
// answered with 200 and success=false, which existing callers rely on.
func (h *ContactHandler) Submit(ctx *gin.Context) {
	var req ContactSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Error(fmt.Errorf("failed to bind json: %w", err))
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	msg := store.NewContactMessage(req.Name, req.Email, req.Phone, req.Address, req.Comment)
	if err := h.store.CreateContactMessage(ctx, msg); err != nil {
		ctx.Error(fmt.Errorf("failed to store contact message: %w", err))
		slog.Error("contact message not stored", "name", req.Name, "error", err)
		ctx.JSON(http.StatusOK, SubmitFailed())
		return
	}

	slog.Info("new contact message", "name", msg.Name, "email", msg.Email, "messageId", msg.ID)

	if err := h.mailer.SendContactNotification(ctx, msg); err != nil {
		// Never bubbles up: persistence success implies request success.
		slog.Error("contact notification failed", "messageId", msg.ID, "error", err)
	}

	ctx.JSON(http.StatusOK, SubmitAccepted(msg.ID))
}
