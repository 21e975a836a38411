package organization

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	CreateOrganization(ctx context.Context, org *Organization) error
	GetByID(ctx context.Context, orgID string) (*Organization, error)
	GetByCode(ctx context.Context, code string) (*Organization, error)
	IsCodeTaken(ctx context.Context, code string) (bool, error)
	UpdateCode(ctx context.Context, orgID, code string) error
	SetMembership(ctx context.Context, userID, orgID, role, status string) error
	UpdateMemberStatus(ctx context.Context, userID, status string) error
	GetMember(ctx context.Context, userID string) (*Member, error)
	ListMembers(ctx context.Context, orgID string) ([]Member, error)
	ListPendingMembers(ctx context.Context, orgID string) ([]Member, error)
}
