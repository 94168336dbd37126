package status

// StatusCheckCreateRequest is the request to record a new status check.
type StatusCheckCreateRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}
