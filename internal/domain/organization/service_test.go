package organization

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeOrgRepo struct {
	orgs    map[string]*Organization
	codes   map[string]string
	members map[string]*Member
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{
		orgs:    make(map[string]*Organization),
		codes:   make(map[string]string),
		members: make(map[string]*Member),
	}
}

func (r *fakeOrgRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeOrgRepo) CreateOrganization(ctx context.Context, org *Organization) error {
	r.orgs[org.ID] = org
	r.codes[org.ReferralCode] = org.ID
	return nil
}

func (r *fakeOrgRepo) GetByID(ctx context.Context, orgID string) (*Organization, error) {
	org, ok := r.orgs[orgID]
	if !ok {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

func (r *fakeOrgRepo) GetByCode(ctx context.Context, code string) (*Organization, error) {
	id, ok := r.codes[code]
	if !ok {
		return nil, ErrCodeNotFound
	}
	return r.orgs[id], nil
}

func (r *fakeOrgRepo) IsCodeTaken(ctx context.Context, code string) (bool, error) {
	_, ok := r.codes[code]
	return ok, nil
}

func (r *fakeOrgRepo) UpdateCode(ctx context.Context, orgID, code string) error {
	org, ok := r.orgs[orgID]
	if !ok {
		return ErrOrganizationNotFound
	}
	delete(r.codes, org.ReferralCode)
	org.ReferralCode = code
	r.codes[code] = orgID
	return nil
}

func (r *fakeOrgRepo) SetMembership(ctx context.Context, userID, orgID, role, status string) error {
	member, ok := r.members[userID]
	if !ok {
		member = &Member{ID: userID, JoinedAt: time.Now().UTC()}
		r.members[userID] = member
	}
	member.OrganizationID = &orgID
	member.Role = role
	member.Status = status
	return nil
}

func (r *fakeOrgRepo) UpdateMemberStatus(ctx context.Context, userID, status string) error {
	member, ok := r.members[userID]
	if !ok {
		return ErrMemberNotFound
	}
	member.Status = status
	return nil
}

func (r *fakeOrgRepo) GetMember(ctx context.Context, userID string) (*Member, error) {
	member, ok := r.members[userID]
	if !ok {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

func (r *fakeOrgRepo) ListMembers(ctx context.Context, orgID string) ([]Member, error) {
	result := make([]Member, 0)
	for _, member := range r.members {
		if member.OrganizationID != nil && *member.OrganizationID == orgID {
			result = append(result, *member)
		}
	}
	return result, nil
}

func (r *fakeOrgRepo) ListPendingMembers(ctx context.Context, orgID string) ([]Member, error) {
	result := make([]Member, 0)
	for _, member := range r.members {
		if member.OrganizationID != nil && *member.OrganizationID == orgID && member.Status == statusPending {
			result = append(result, *member)
		}
	}
	return result, nil
}

func TestCreatePromotesOwner(t *testing.T) {
	repo := newFakeOrgRepo()
	svc := NewService(repo)

	org, err := svc.Create(context.Background(), "user-1", "Smiths")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(org.ReferralCode) != referralCodeLength {
		t.Fatalf("expected %d-char code, got %q", referralCodeLength, org.ReferralCode)
	}
	if org.OwnerID != "user-1" {
		t.Fatalf("expected owner user-1, got %s", org.OwnerID)
	}

	owner := repo.members["user-1"]
	if owner == nil {
		t.Fatal("owner membership not created")
	}
	if owner.Role != roleParent || owner.Status != statusApproved {
		t.Fatalf("expected PARENT/APPROVED, got %s/%s", owner.Role, owner.Status)
	}
	if owner.OrganizationID == nil || *owner.OrganizationID != org.ID {
		t.Fatal("owner not attached to organization")
	}
}

func TestJoinByCodeResetsMembership(t *testing.T) {
	repo := newFakeOrgRepo()
	svc := NewService(repo)
	ctx := context.Background()

	org, err := svc.Create(ctx, "parent-1", "Smiths")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	joined, err := svc.JoinByCode(ctx, "member-1", org.ReferralCode)
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if joined.ID != org.ID {
		t.Fatalf("expected org %s, got %s", org.ID, joined.ID)
	}

	member := repo.members["member-1"]
	if member.Role != roleMember || member.Status != statusPending {
		t.Fatalf("expected MEMBER/PENDING, got %s/%s", member.Role, member.Status)
	}
}

func TestJoinByCodeUnknownCode(t *testing.T) {
	svc := NewService(newFakeOrgRepo())

	_, err := svc.JoinByCode(context.Background(), "member-1", "NOSUCH99")
	if !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected ErrCodeNotFound, got %v", err)
	}
}

func TestRegenerateCodeInvalidatesOldCode(t *testing.T) {
	repo := newFakeOrgRepo()
	svc := NewService(repo)
	ctx := context.Background()

	org, err := svc.Create(ctx, "parent-1", "Smiths")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	oldCode := org.ReferralCode

	newCode, err := svc.RegenerateCode(ctx, org.ID)
	if err != nil {
		t.Fatalf("regenerate failed: %v", err)
	}
	if newCode == oldCode {
		t.Fatal("expected a fresh code")
	}

	if _, err := svc.JoinByCode(ctx, "member-1", oldCode); !errors.Is(err, ErrCodeNotFound) {
		t.Fatalf("expected old code rejected, got %v", err)
	}
	if _, err := svc.JoinByCode(ctx, "member-1", newCode); err != nil {
		t.Fatalf("expected new code accepted, got %v", err)
	}
}

func TestApproveMember(t *testing.T) {
	repo := newFakeOrgRepo()
	svc := NewService(repo)
	ctx := context.Background()

	org, err := svc.Create(ctx, "parent-1", "Smiths")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.JoinByCode(ctx, "member-1", org.ReferralCode); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	if err := svc.ApproveMember(ctx, org.ID, "member-1"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if repo.members["member-1"].Status != statusApproved {
		t.Fatal("member not approved")
	}

	pending, err := svc.ListPending(ctx, org.ID)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending members, got %d", len(pending))
	}
}

func TestApproveMemberOutsideOrganization(t *testing.T) {
	repo := newFakeOrgRepo()
	svc := NewService(repo)
	ctx := context.Background()

	orgA, err := svc.Create(ctx, "parent-a", "Smiths")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	orgB, err := svc.Create(ctx, "parent-b", "Jones")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.JoinByCode(ctx, "member-1", orgB.ReferralCode); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	if err := svc.ApproveMember(ctx, orgA.ID, "member-1"); !errors.Is(err, ErrNotInOrganization) {
		t.Fatalf("expected ErrNotInOrganization, got %v", err)
	}
	if err := svc.ApproveMember(ctx, orgA.ID, "ghost"); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
}
