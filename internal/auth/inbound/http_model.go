package inbound

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	TurfName string `json:"turf_name"`
	Location string `json:"location"`
}

type SignupResponse struct{}

func (SignupResponse) Message() string {
	return "OTP sent to registered email for verification"
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type VerifyOTPResponse struct{}

func (VerifyOTPResponse) Message() string {
	return "Account verified successfully"
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct{}

func (LoginResponse) Message() string {
	return "OTP sent to registered email for verification"
}

type userPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginVerifyResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

func (LoginVerifyResponse) Message() string {
	return "Login successful"
}

type MeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
