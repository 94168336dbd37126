package contact

// ContactSubmitRequest is a contact form submission. The email address is
// opaque here; the mail relay downstream may still reject it.
type ContactSubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Comment string `json:"comment" binding:"required"`
}

// ContactSubmitResponse is the single wire shape for both outcomes. The id
// is only present on success.
type ContactSubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

const (
	msgAccepted = "Thank you for your message! I will get back to you soon."
	msgFailed   = "Failed to send message. Please try again or email directly."
)

// SubmitAccepted is the persisted-successfully variant.
func SubmitAccepted(id string) *ContactSubmitResponse {
	return &ContactSubmitResponse{
		Success: true,
		Message: msgAccepted,
		ID:      id,
	}
}

// SubmitFailed is the persistence-failed variant. Deliberately served with
// HTTP 200; callers read the success flag, not the status code.
func SubmitFailed() *ContactSubmitResponse {
	return &ContactSubmitResponse{
		Success: false,
		Message: msgFailed,
	}
}
