package types

// VerifyPurpose is the account change a verification step unlocks
type VerifyPurpose string

const (
	VerifyPurposeEmail    VerifyPurpose = "email"
	VerifyPurposePassword VerifyPurpose = "password"
)

func (p VerifyPurpose) IsValid() bool {
	return p == VerifyPurposeEmail || p == VerifyPurposePassword
}
