package inbound

import (
	"context"

	"github.com/Mohamedalijas/turfnation/internal/auth/usecase"
	"github.com/Mohamedalijas/turfnation/internal/pkg/router"
)

type uc interface {
	Signup(ctx context.Context, in usecase.SignupInput) error
	VerifySignupOTP(ctx context.Context, in usecase.VerifySignupOTPInput) error

	Login(ctx context.Context, in usecase.LoginInput) error
	VerifyLoginOTP(ctx context.Context, in usecase.VerifyLoginOTPInput) (*usecase.VerifyLoginOTPOutput, error)

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Registration
	r.POST("/api/users/signup", end.Signup)
	r.POST("/api/users/verify-otp", end.VerifyOTP)

	// Login
	r.POST("/api/users/login", end.Login)
	r.POST("/api/users/login/verify-otp", end.LoginVerify)

	// Profile (need authenticated)
	r.GET("/api/users/me", end.Me)
}
