package account

import (
	"testing"
	"time"

	ierr "github.com/openshop/storefront/internal/errors"
	"github.com/openshop/storefront/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailChangeFlow(t *testing.T) {
	d, err := OpenVerify(NoDialog{}, types.VerifyPurposeEmail)
	require.NoError(t, err)
	assert.Equal(t, VerifyDialog{Purpose: types.VerifyPurposeEmail}, d)

	d, err = Verified(d)
	require.NoError(t, err)
	assert.Equal(t, DialogKindChangeEmail, d.Kind())

	assert.Equal(t, NoDialog{}, Close(d))
}

func TestPasswordChangeAndReset(t *testing.T) {
	verify, err := OpenVerify(nil, types.VerifyPurposePassword)
	require.NoError(t, err)

	next, err := Verified(verify)
	require.NoError(t, err)
	assert.Equal(t, ChangePasswordDialog{}, next)

	reset, err := ForgetPassword(verify)
	require.NoError(t, err)
	assert.Equal(t, ForgetPasswordDialog{}, reset)
}

func TestIllegalTransitions(t *testing.T) {
	_, err := Verified(NoDialog{})
	assert.True(t, ierr.IsInvalidOperation(err))

	_, err = ForgetPassword(ChangeEmailDialog{})
	assert.True(t, ierr.IsInvalidOperation(err))

	_, err = OpenVerify(AvatarDialog{}, types.VerifyPurposeEmail)
	assert.True(t, ierr.IsInvalidOperation(err))

	_, err = OpenAvatar(VerifyDialog{Purpose: types.VerifyPurposeEmail})
	assert.True(t, ierr.IsInvalidOperation(err))

	_, err = OpenVerify(NoDialog{}, "phone")
	assert.True(t, ierr.IsValidation(err))
}

func TestDialogStateRoundTrip(t *testing.T) {
	dialogs := []Dialog{
		NoDialog{},
		VerifyDialog{Purpose: types.VerifyPurposePassword},
		ChangeEmailDialog{},
		ChangePasswordDialog{},
		ForgetPasswordDialog{},
		AvatarDialog{},
	}
	for _, d := range dialogs {
		back, err := FromState(StateOf(d))
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}

func TestFromStateRejectsMismatchedPayload(t *testing.T) {
	_, err := FromState(DialogState{Kind: DialogKindChangeEmail, Purpose: types.VerifyPurposeEmail})
	assert.True(t, ierr.IsValidation(err))

	_, err = FromState(DialogState{Kind: DialogKindVerify})
	assert.True(t, ierr.IsValidation(err))

	_, err = FromState(DialogState{Kind: "crop"})
	assert.True(t, ierr.IsValidation(err))
}

func TestAgeOn(t *testing.T) {
	birthday := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 33, AgeOn(birthday, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 34, AgeOn(birthday, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 34, AgeOn(birthday, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 33, AgeOn(birthday, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}
