package response

import "github.com/google/uuid"

type CreatedSheetResponse struct {
	ID uuid.UUID `json:"id"`
}
