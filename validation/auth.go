package validation

import (
	"github.com/appbook/appbook/models"
)

type SignupInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
	Phone    string      `json:"phone"`
	Address  string      `json:"address"`
}

func (in *SignupInput) Validate() error {
	errs := FieldErrors{}
	if in.Name == "" {
		errs["name"] = "Name is required"
	} else if len(in.Name) > MaxNameLength {
		errs["name"] = "Name too long"
	}
	if !validEmail(in.Email) {
		errs["email"] = "Invalid email address"
	}
	if len(in.Password) < MinPasswordLength {
		errs["password"] = "Password must be at least 8 characters"
	}
	if in.Role != "" && !in.Role.IsValid() {
		errs["role"] = "Invalid role"
	}
	return errs.OrNil()
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) Validate() error {
	errs := FieldErrors{}
	if !validEmail(in.Email) {
		errs["email"] = "Invalid email address"
	}
	if in.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs.OrNil()
}
