package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=5,alphanum"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
}

type UpdateUserRequest struct {
	Username  string `json:"username" binding:"required,min=5,alphanum"`
	Password  string `json:"password" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// FieldError is a single validation violation as returned to clients.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
