package response

// MessageResponse confirms operations that do not return an entity.
type MessageResponse struct {
	Message string `json:"message"`
}

func NewMessage(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
