package dto

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// StatusResponse mirrors the notification/mail acknowledgement shape.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
