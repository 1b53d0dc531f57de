package admin_login

// LoginRequest HTTP request model
type LoginRequest struct {
	PIN string `json:"pin"`
}
