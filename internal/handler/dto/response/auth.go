package response

import "github.com/google/uuid"

type LoginResponse struct {
	OperatorID  uuid.UUID `json:"operator_id"`
	AccessToken string    `json:"access_token"`
}
