package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrCodeNotFound         = errors.New("referral code not found")
	ErrCodeGenerationFailed = errors.New("referral code generation failed")
	ErrMemberNotFound       = errors.New("member not found")
	ErrNotInOrganization    = errors.New("member not in organization")
)
