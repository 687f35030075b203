package handler

import "time"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// StatusesRequest represents the status selection request body.
type StatusesRequest struct {
	Statuses []string `json:"statuses" binding:"required" example:"wc-completed,wc-processing"`
}

// EmailRequest represents the register email request body.
type EmailRequest struct {
	To string `json:"to" binding:"required,email" example:"accountant@example.com"`
}

// DismissRequest represents the dismiss-notice request body.
type DismissRequest struct {
	Nonce string `json:"nonce" binding:"required" example:"a1b2c3d4e5"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt   time.Time `json:"expires_at" example:"2025-03-05T22:30:00Z"`
}

// NonceResponse represents the dismiss-notice token response.
type NonceResponse struct {
	Nonce     string `json:"nonce" example:"a1b2c3d4e5"`
	Dismissed bool   `json:"dismissed" example:"false"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
