package request

type LoginRequest struct {
	Secret string `json:"secret" binding:"required"`
}
