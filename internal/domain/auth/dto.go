package auth

import (
	"github.com/hamkar/worklog-backend-go/internal/pkg/validator"
)

type SignupRequest struct {
	TelegramID string `json:"telegram_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
}

func (r *SignupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TelegramID) {
		errs = append(errs, validator.ValidationError{
			Field:   "telegram_id",
			Message: "telegram_id is required",
		})
	} else if !validator.IsNumeric(r.TelegramID) {
		errs = append(errs, validator.ValidationError{
			Field:   "telegram_id",
			Message: "telegram_id must be numeric",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
}

type UserResponse struct {
	ID         string `json:"id"`
	TelegramID string `json:"telegram_id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
}
