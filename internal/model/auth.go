package model

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the request body for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse contains the auth token
type LoginResponse struct {
	Token      string `json:"token"`
	AssessorID string `json:"assessorId"`
}

// AssessorClaims are the JWT claims for an assessor session
type AssessorClaims struct {
	AssessorID string `json:"assessorId"`
	jwt.RegisteredClaims
}
