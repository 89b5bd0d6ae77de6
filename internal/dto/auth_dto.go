package dto

// SignupRequest carries new-account credentials. No length or complexity
// policy is enforced beyond presence.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenRequest is the form-encoded login payload.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MessageResponse struct {
	Message string `json:"msg"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
