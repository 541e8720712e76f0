package dto

type ConnectRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type DisconnectRequest struct {
	Email string `json:"email" validate:"required,email"`
}
