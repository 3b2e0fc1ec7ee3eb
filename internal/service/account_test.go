package service

import (
	"testing"
	"time"

	"github.com/openshop/storefront/internal/api/dto"
	"github.com/openshop/storefront/internal/domain/account"
	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/testutil"
	"github.com/openshop/storefront/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type AccountServiceSuite struct {
	testutil.BaseServiceTestSuite
	service *accountService
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewAccountService(paramsFrom(&s.BaseServiceTestSuite)).(*accountService)
	s.service.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }

	s.GetStorefront().AddUser(shopperToken, &account.User{
		UserID: "u1",
		Email:  "ada@example.com",
		Name:   "Ada",
	}, "secret")
}

func verifyState(purpose types.VerifyPurpose) account.DialogState {
	return account.DialogState{Kind: account.DialogKindVerify, Purpose: purpose}
}

func (s *AccountServiceSuite) TestVerifyOpensTheRequestedChange() {
	testCases := []struct {
		purpose types.VerifyPurpose
		want    account.DialogKind
	}{
		{purpose: types.VerifyPurposeEmail, want: account.DialogKindChangeEmail},
		{purpose: types.VerifyPurposePassword, want: account.DialogKindChangePassword},
	}

	for _, tc := range testCases {
		s.Run(string(tc.purpose), func() {
			resp, err := s.service.Verify(s.GetContext(), shopper, dto.VerifyAccountRequest{
				Purpose:  tc.purpose,
				Email:    "ada@example.com",
				Password: "secret",
			})
			s.Require().NoError(err)
			s.Equal(tc.want, resp.Dialog.Kind)
			s.Empty(resp.Dialog.Purpose)
		})
	}
}

func (s *AccountServiceSuite) TestVerifyFailures() {
	_, err := s.service.Verify(s.GetContext(), shopper, dto.VerifyAccountRequest{
		Purpose:  types.VerifyPurposeEmail,
		Email:    "ada@example.com",
		Password: "wrong",
	})
	s.True(ierr.IsValidation(err))

	_, err = s.service.Verify(s.GetContext(), shopper, dto.VerifyAccountRequest{
		Purpose:  "avatar",
		Email:    "ada@example.com",
		Password: "secret",
	})
	s.True(ierr.IsValidation(err))
}

func (s *AccountServiceSuite) TestChangeEmail() {
	_, err := s.service.ChangeEmail(s.GetContext(), shopper, dto.ChangeEmailRequest{
		Dialog:   account.DialogState{Kind: account.DialogKindNone},
		NewEmail: "lovelace@example.com",
	})
	s.True(ierr.IsInvalidOperation(err), "email cannot change before verification")

	resp, err := s.service.ChangeEmail(s.GetContext(), shopper, dto.ChangeEmailRequest{
		Dialog:   account.DialogState{Kind: account.DialogKindChangeEmail},
		NewEmail: "lovelace@example.com",
	})
	s.Require().NoError(err)
	s.Equal(account.DialogKindNone, resp.Dialog.Kind)

	user, err := s.service.GetAccount(s.GetContext(), shopper)
	s.Require().NoError(err)
	s.Equal("lovelace@example.com", user.Email)
}

func (s *AccountServiceSuite) TestChangePassword() {
	_, err := s.service.ChangePassword(s.GetContext(), shopper, dto.ChangePasswordRequest{
		Dialog:      account.DialogState{Kind: account.DialogKindChangeEmail},
		NewPassword: "hunter2",
	})
	s.True(ierr.IsInvalidOperation(err))

	_, err = s.service.ChangePassword(s.GetContext(), shopper, dto.ChangePasswordRequest{
		Dialog:      account.DialogState{Kind: account.DialogKindChangePassword},
		NewPassword: "hunter2",
	})
	s.Require().NoError(err)

	_, err = s.service.Verify(s.GetContext(), shopper, dto.VerifyAccountRequest{
		Purpose:  types.VerifyPurposePassword,
		Email:    "ada@example.com",
		Password: "hunter2",
	})
	s.NoError(err)
}

func (s *AccountServiceSuite) TestSendPasswordReset() {
	testCases := []struct {
		name    string
		dialog  account.DialogState
		wantErr func(error) bool
	}{
		{name: "from_verify", dialog: verifyState(types.VerifyPurposePassword)},
		{name: "from_forget_password", dialog: account.DialogState{Kind: account.DialogKindForgetPassword}},
		{name: "from_nothing", dialog: account.DialogState{Kind: account.DialogKindNone}, wantErr: ierr.IsInvalidOperation},
		{name: "from_avatar", dialog: account.DialogState{Kind: account.DialogKindAvatar}, wantErr: ierr.IsInvalidOperation},
		{name: "malformed_state", dialog: account.DialogState{Kind: account.DialogKindVerify}, wantErr: ierr.IsValidation},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.SendPasswordReset(s.GetContext(), shopper, dto.ForgetPasswordRequest{
				Dialog: tc.dialog,
				Email:  "ada@example.com",
			})
			if tc.wantErr != nil {
				s.Error(err)
				s.True(tc.wantErr(err), "unexpected error: %v", err)
				return
			}
			s.Require().NoError(err)
			s.Equal(account.DialogKindNone, resp.Dialog.Kind)
		})
	}

	s.Equal([]string{"ada@example.com", "ada@example.com"}, s.GetStorefront().ResetEmails())
}

func (s *AccountServiceSuite) TestUpdateDetails() {
	resp, err := s.service.UpdateDetails(s.GetContext(), shopper, dto.UpdateAccountDetailsRequest{
		Name:     lo.ToPtr("Ada Lovelace"),
		Birthday: lo.ToPtr("1990-06-16"),
	})
	s.Require().NoError(err)
	s.Equal("Ada Lovelace", resp.Name)
	s.Equal("1990-06-16", resp.Birthday)
	s.Equal(33, resp.Age)

	updates := s.GetStorefront().DetailUpdates()
	s.Require().Len(updates, 1)
	s.Equal([]string{"name", "birthday", "age"}, updates[0].Fields)
}

func (s *AccountServiceSuite) TestUpdateDetailsRejections() {
	_, err := s.service.UpdateDetails(s.GetContext(), shopper, dto.UpdateAccountDetailsRequest{})
	s.True(ierr.IsValidation(err))

	_, err = s.service.UpdateDetails(s.GetContext(), shopper, dto.UpdateAccountDetailsRequest{
		AvatarURI: lo.ToPtr("not a url"),
	})
	s.True(ierr.IsValidation(err))

	_, err = s.service.UpdateDetails(s.GetContext(), types.Credentials{}, dto.UpdateAccountDetailsRequest{
		Name: lo.ToPtr("x"),
	})
	s.True(ierr.IsPermissionDenied(err))
}
