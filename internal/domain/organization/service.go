package organization

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	referralCodeLength   = 8
	referralCodeAttempts = 10
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create forms a new household. The creator is promoted to PARENT/APPROVED
// and attached to the organization in the same transaction as the insert.
func (s *Service) Create(ctx context.Context, ownerID, name string) (*Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	var result Organization
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		code, err := generateUniqueCode(ctx, tx)
		if err != nil {
			return err
		}

		org := Organization{
			ID:           uuid.NewString(),
			Name:         name,
			ReferralCode: code,
			OwnerID:      ownerID,
		}
		if err := tx.CreateOrganization(ctx, &org); err != nil {
			return err
		}

		if err := tx.SetMembership(ctx, ownerID, org.ID, roleParent, statusApproved); err != nil {
			return err
		}

		result = org
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// JoinByCode attaches the user to the organization behind the referral code
// and resets them to MEMBER/PENDING, demoting any prior parent role.
func (s *Service) JoinByCode(ctx context.Context, userID, code string) (*Organization, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("referral code is required")
	}

	var result Organization
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		org, err := tx.GetByCode(ctx, code)
		if err != nil {
			return err
		}

		if err := tx.SetMembership(ctx, userID, org.ID, roleMember, statusPending); err != nil {
			return err
		}

		result = *org
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// RegenerateCode replaces the referral code. The previous code stops
// matching any organization immediately.
func (s *Service) RegenerateCode(ctx context.Context, orgID string) (string, error) {
	var code string
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetByID(ctx, orgID); err != nil {
			return err
		}

		generated, err := generateUniqueCode(ctx, tx)
		if err != nil {
			return err
		}

		if err := tx.UpdateCode(ctx, orgID, generated); err != nil {
			return err
		}

		code = generated
		return nil
	})
	if err != nil {
		return "", err
	}

	return code, nil
}

func (s *Service) ListMembers(ctx context.Context, orgID string) ([]Member, error) {
	return s.repo.ListMembers(ctx, orgID)
}

func (s *Service) ListPending(ctx context.Context, orgID string) ([]Member, error) {
	return s.repo.ListPendingMembers(ctx, orgID)
}

// ApproveMember flips a pending member to APPROVED. The caller must already
// be verified as a parent; the member must belong to the caller's
// organization.
func (s *Service) ApproveMember(ctx context.Context, approverOrgID, memberID string) error {
	return s.repo.Transaction(ctx, func(tx Repository) error {
		member, err := tx.GetMember(ctx, memberID)
		if err != nil {
			return err
		}
		if member.OrganizationID == nil || *member.OrganizationID != approverOrgID {
			return ErrNotInOrganization
		}

		return tx.UpdateMemberStatus(ctx, memberID, statusApproved)
	})
}

func generateUniqueCode(ctx context.Context, repo Repository) (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		code, err := generateCode(referralCodeLength)
		if err != nil {
			return "", err
		}
		taken, err := repo.IsCodeTaken(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeGenerationFailed
}

func generateCode(length int) (string, error) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	max := big.NewInt(int64(len(alphabet)))

	var builder strings.Builder
	builder.Grow(length)

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[n.Int64()])
	}

	return builder.String(), nil
}
