package request

import "github.com/google/uuid"

type ChatRequest struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	Message        string    `json:"message" binding:"required,max=4000"`
}
