package request

type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,min=10,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	// ProductKey is required for non-BUYER signups; its absence there is an
	// authorization failure handled by the service, not a validation one.
	ProductKey string `json:"productKey,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GenerateKeyRequest struct {
	Email    string `json:"email" validate:"required,email"`
	UserType string `json:"user_type" validate:"required,oneof=BUYER REALTOR ADMIN"`
}
