package dto

import (
	"github.com/openshop/storefront/internal/domain/account"
	"github.com/openshop/storefront/internal/types"
	"github.com/openshop/storefront/internal/validator"
)

type AccountResponse struct {
	*account.User `json:",inline"`
}

// DialogResponse carries the account dialog the client should show next
type DialogResponse struct {
	Dialog account.DialogState `json:"dialog"`
}

type VerifyAccountRequest struct {
	Purpose  types.VerifyPurpose `json:"purpose" validate:"required,oneof=email password"`
	Email    string              `json:"email" validate:"required,email"`
	Password string              `json:"password" validate:"required"`
}

func (r *VerifyAccountRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type ChangeEmailRequest struct {
	Dialog   account.DialogState `json:"dialog"`
	NewEmail string              `json:"new_email" validate:"required,email"`
}

func (r *ChangeEmailRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type ChangePasswordRequest struct {
	Dialog      account.DialogState `json:"dialog"`
	NewPassword string              `json:"new_password" validate:"required"`
}

func (r *ChangePasswordRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type ForgetPasswordRequest struct {
	Dialog account.DialogState `json:"dialog"`
	Email  string              `json:"email" validate:"required,email"`
}

func (r *ForgetPasswordRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// UpdateAccountDetailsRequest changes profile fields; omitted fields are left alone
type UpdateAccountDetailsRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,max=20"`
	Birthday  *string `json:"birthday,omitempty"`
	About     *string `json:"about,omitempty" validate:"omitempty,max=1000"`
	AvatarURI *string `json:"avatar_uri,omitempty" validate:"omitempty,url"`
}

func (r *UpdateAccountDetailsRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *UpdateAccountDetailsRequest) ToDetails() account.Details {
	return account.Details{
		Name:      r.Name,
		Gender:    r.Gender,
		Birthday:  r.Birthday,
		About:     r.About,
		AvatarURI: r.AvatarURI,
	}
}
