package request

import (
	"github.com/google/uuid"
)

type AssignUsersRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" binding:"required,min=1,dive,required"`
	Notes   string      `json:"notes"`
}
