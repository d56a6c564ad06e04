package inbound

import (
	"github.com/Mohamedalijas/turfnation/internal/auth/usecase"
	"github.com/Mohamedalijas/turfnation/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the signup and login workflows.
type HTTPEndpoint struct {
	uc uc
}

// Signup registers a new account and sends a verification code by email.
func (h *HTTPEndpoint) Signup(r *router.Request) (any, error) {
	var req SignupRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.Signup(r.Context(), usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
		TurfName: req.TurfName,
		Location: req.Location,
	})
	if err != nil {
		return nil, err
	}

	return SignupResponse{}, nil
}

// VerifyOTP activates a freshly registered account.
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.VerifySignupOTP(r.Context(), usecase.VerifySignupOTPInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{}, nil
}

// Login checks the password and sends a login code by email.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{}, nil
}

// LoginVerify consumes the login code and returns a signed token.
func (h *HTTPEndpoint) LoginVerify(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyLoginOTP(r.Context(), usecase.VerifyLoginOTPInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return nil, err
	}

	return LoginVerifyResponse{
		Token: resp.Token,
		User: userPayload{
			Name:  resp.Name,
			Email: resp.Email,
			Role:  resp.Role,
		},
	}, nil
}

// Me returns the authenticated account's identity.
func (h *HTTPEndpoint) Me(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return MeResponse{
		ID:    resp.ID,
		Name:  resp.Name,
		Email: resp.Email,
		Role:  resp.Role,
	}, nil
}
