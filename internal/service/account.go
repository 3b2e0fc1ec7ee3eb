package service

import (
	"context"
	"time"

	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/domain/account"
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/types"
)

// AccountService drives the account settings dialogs. Each call takes the
// dialog the client is showing and returns the one it should show next.
type AccountService interface {
	GetAccount(ctx context.Context, creds types.Credentials) (*dto.AccountResponse, error)
	Verify(ctx context.Context, creds types.Credentials, req dto.VerifyAccountRequest) (*dto.DialogResponse, error)
	ChangeEmail(ctx context.Context, creds types.Credentials, req dto.ChangeEmailRequest) (*dto.DialogResponse, error)
	ChangePassword(ctx context.Context, creds types.Credentials, req dto.ChangePasswordRequest) (*dto.DialogResponse, error)
	SendPasswordReset(ctx context.Context, creds types.Credentials, req dto.ForgetPasswordRequest) (*dto.DialogResponse, error)
	UpdateDetails(ctx context.Context, creds types.Credentials, req dto.UpdateAccountDetailsRequest) (*dto.AccountResponse, error)
}

type accountService struct {
	ServiceParams
	now func() time.Time
}

func NewAccountService(params ServiceParams) AccountService {
	return &accountService{
		ServiceParams: params,
		now:           time.Now,
	}
}

func (s *accountService) GetAccount(ctx context.Context, creds types.Credentials) (*dto.AccountResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}

	user, err := s.Storefront.GetUser(ctx, creds)
	if err != nil {
		return nil, err
	}
	return &dto.AccountResponse{User: user}, nil
}

func (s *accountService) Verify(ctx context.Context, creds types.Credentials, req dto.VerifyAccountRequest) (*dto.DialogResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dialog, err := account.OpenVerify(account.NoDialog{}, req.Purpose)
	if err != nil {
		return nil, err
	}

	if err := s.Storefront.VerifyAccount(ctx, creds, req.Email, req.Password); err != nil {
		return nil, err
	}

	next, err := account.Verified(dialog)
	if err != nil {
		return nil, err
	}
	return &dto.DialogResponse{Dialog: account.StateOf(next)}, nil
}

func (s *accountService) ChangeEmail(ctx context.Context, creds types.Credentials, req dto.ChangeEmailRequest) (*dto.DialogResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dialog, err := requireDialog(req.Dialog, account.DialogKindChangeEmail, "change email")
	if err != nil {
		return nil, err
	}

	if err := s.Storefront.UpdateEmail(ctx, creds, req.NewEmail); err != nil {
		return nil, err
	}

	s.Logger.Infow("account email changed", "request_id", types.GetRequestID(ctx))
	return &dto.DialogResponse{Dialog: account.StateOf(account.Close(dialog))}, nil
}

func (s *accountService) ChangePassword(ctx context.Context, creds types.Credentials, req dto.ChangePasswordRequest) (*dto.DialogResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dialog, err := requireDialog(req.Dialog, account.DialogKindChangePassword, "change password")
	if err != nil {
		return nil, err
	}

	if err := s.Storefront.UpdatePassword(ctx, creds, req.NewPassword); err != nil {
		return nil, err
	}

	s.Logger.Infow("account password changed", "request_id", types.GetRequestID(ctx))
	return &dto.DialogResponse{Dialog: account.StateOf(account.Close(dialog))}, nil
}

// SendPasswordReset accepts either the verify dialog, which it moves to the
// forget password step, or the forget password dialog itself
func (s *accountService) SendPasswordReset(ctx context.Context, creds types.Credentials, req dto.ForgetPasswordRequest) (*dto.DialogResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dialog, err := account.FromState(req.Dialog)
	if err != nil {
		return nil, err
	}
	if dialog.Kind() == account.DialogKindVerify {
		if dialog, err = account.ForgetPassword(dialog); err != nil {
			return nil, err
		}
	}
	if dialog.Kind() != account.DialogKindForgetPassword {
		return nil, ierr.NewErrorf("cannot send a password reset while %s dialog is open", dialog.Kind()).
			WithHint("Cannot send a password reset right now").
			Mark(ierr.ErrInvalidOperation)
	}

	if err := s.Storefront.ForgetPassword(ctx, creds, req.Email); err != nil {
		return nil, err
	}
	return &dto.DialogResponse{Dialog: account.StateOf(account.Close(dialog))}, nil
}

func (s *accountService) UpdateDetails(ctx context.Context, creds types.Credentials, req dto.UpdateAccountDetailsRequest) (*dto.AccountResponse, error) {
	if creds.IsAnonymous() {
		return nil, errSignInRequired()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	update, err := account.NewDetailsUpdate(req.ToDetails(), s.now().UTC())
	if err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		return nil, ierr.NewError("no account details to update").
			WithHint("Please change at least one field").
			Mark(ierr.ErrValidation)
	}

	if err := s.Storefront.UpdateDetails(ctx, creds, update); err != nil {
		return nil, err
	}

	s.Logger.Infow("account details updated", "fields", update.Fields)
	return s.GetAccount(ctx, creds)
}

func requireDialog(state account.DialogState, want account.DialogKind, action string) (account.Dialog, error) {
	dialog, err := account.FromState(state)
	if err != nil {
		return nil, err
	}
	if dialog.Kind() != want {
		return nil, ierr.NewErrorf("cannot %s while %s dialog is open", action, dialog.Kind()).
			WithHintf("Please verify your account before you %s", action).
			WithReportableDetails(map[string]any{"current_dialog": dialog.Kind()}).
			Mark(ierr.ErrInvalidOperation)
	}
	return dialog, nil
}
