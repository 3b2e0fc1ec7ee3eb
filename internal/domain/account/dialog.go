package account

import (
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/types"
)

type DialogKind string

const (
	DialogKindNone           DialogKind = "none"
	DialogKindVerify         DialogKind = "verify"
	DialogKindChangeEmail    DialogKind = "change_email"
	DialogKindChangePassword DialogKind = "change_password"
	DialogKindForgetPassword DialogKind = "forget_password"
	DialogKindAvatar         DialogKind = "avatar"
)

// Dialog is the one account-settings dialog currently open, with its payload.
// Only the variants below implement it.
type Dialog interface {
	Kind() DialogKind
	isDialog()
}

type NoDialog struct{}

// VerifyDialog asks for the current credentials before an email or password change
type VerifyDialog struct {
	Purpose types.VerifyPurpose
}

type ChangeEmailDialog struct{}

type ChangePasswordDialog struct{}

type ForgetPasswordDialog struct{}

type AvatarDialog struct{}

func (NoDialog) Kind() DialogKind             { return DialogKindNone }
func (VerifyDialog) Kind() DialogKind         { return DialogKindVerify }
func (ChangeEmailDialog) Kind() DialogKind    { return DialogKindChangeEmail }
func (ChangePasswordDialog) Kind() DialogKind { return DialogKindChangePassword }
func (ForgetPasswordDialog) Kind() DialogKind { return DialogKindForgetPassword }
func (AvatarDialog) Kind() DialogKind         { return DialogKindAvatar }

func (NoDialog) isDialog()             {}
func (VerifyDialog) isDialog()         {}
func (ChangeEmailDialog) isDialog()    {}
func (ChangePasswordDialog) isDialog() {}
func (ForgetPasswordDialog) isDialog() {}
func (AvatarDialog) isDialog()         {}

// OpenVerify starts the verification step for an email or password change
func OpenVerify(current Dialog, purpose types.VerifyPurpose) (Dialog, error) {
	if !purpose.IsValid() {
		return nil, ierr.NewErrorf("unknown verify purpose %q", string(purpose)).
			WithHint("Verification must be for an email or password change").
			Mark(ierr.ErrValidation)
	}
	if err := requireKind(current, DialogKindNone, "open verification"); err != nil {
		return nil, err
	}
	return VerifyDialog{Purpose: purpose}, nil
}

// Verified moves a successful verification on to the change it unlocks
func Verified(current Dialog) (Dialog, error) {
	verify, ok := current.(VerifyDialog)
	if !ok {
		return nil, transitionError(current, "complete verification")
	}
	if verify.Purpose == types.VerifyPurposeEmail {
		return ChangeEmailDialog{}, nil
	}
	return ChangePasswordDialog{}, nil
}

// ForgetPassword swaps the verification step for the password reset request
func ForgetPassword(current Dialog) (Dialog, error) {
	if err := requireKind(current, DialogKindVerify, "request a password reset"); err != nil {
		return nil, err
	}
	return ForgetPasswordDialog{}, nil
}

func OpenAvatar(current Dialog) (Dialog, error) {
	if err := requireKind(current, DialogKindNone, "open the avatar editor"); err != nil {
		return nil, err
	}
	return AvatarDialog{}, nil
}

// Close dismisses whatever is open
func Close(Dialog) Dialog {
	return NoDialog{}
}

// DialogState is the wire form of a Dialog
type DialogState struct {
	Kind    DialogKind          `json:"kind"`
	Purpose types.VerifyPurpose `json:"purpose,omitempty"`
}

func StateOf(d Dialog) DialogState {
	if d == nil {
		return DialogState{Kind: DialogKindNone}
	}
	state := DialogState{Kind: d.Kind()}
	if verify, ok := d.(VerifyDialog); ok {
		state.Purpose = verify.Purpose
	}
	return state
}

// FromState rebuilds a Dialog, rejecting payloads that do not fit the kind
func FromState(state DialogState) (Dialog, error) {
	if state.Kind != DialogKindVerify && state.Purpose != "" {
		return nil, ierr.NewErrorf("dialog %s does not take a purpose", state.Kind).
			WithHint("Invalid dialog state").
			Mark(ierr.ErrValidation)
	}

	switch state.Kind {
	case "", DialogKindNone:
		return NoDialog{}, nil
	case DialogKindVerify:
		if !state.Purpose.IsValid() {
			return nil, ierr.NewErrorf("verify dialog needs a purpose, got %q", string(state.Purpose)).
				WithHint("Invalid dialog state").
				Mark(ierr.ErrValidation)
		}
		return VerifyDialog{Purpose: state.Purpose}, nil
	case DialogKindChangeEmail:
		return ChangeEmailDialog{}, nil
	case DialogKindChangePassword:
		return ChangePasswordDialog{}, nil
	case DialogKindForgetPassword:
		return ForgetPasswordDialog{}, nil
	case DialogKindAvatar:
		return AvatarDialog{}, nil
	default:
		return nil, ierr.NewErrorf("unknown dialog kind %q", string(state.Kind)).
			WithHint("Invalid dialog state").
			Mark(ierr.ErrValidation)
	}
}

func requireKind(current Dialog, want DialogKind, action string) error {
	if current == nil {
		current = NoDialog{}
	}
	if current.Kind() != want {
		return transitionError(current, action)
	}
	return nil
}

func transitionError(current Dialog, action string) error {
	state := StateOf(current)
	return ierr.NewErrorf("cannot %s while %s dialog is open", action, state.Kind).
		WithHintf("Cannot %s right now", action).
		WithReportableDetails(map[string]any{
			"current_dialog": state.Kind,
		}).
		Mark(ierr.ErrInvalidOperation)
}
