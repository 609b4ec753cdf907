package contact

type SendRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Message string `json:"message" binding:"required,max=5000"`
}

type SendResponse struct {
	Message string `json:"message"`
}
