package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minNameLength     = 2
	minPasswordLength = 6
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account in PENDING status with role MEMBER. At
// least one of email or phone is required and must not belong to an
// existing account.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if err := ValidateRegister(input); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)

	exists, err := s.repo.ExistsByLogin(ctx, email, phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created := User{
		ID:           uuid.NewString(),
		Name:         name,
		PasswordHash: string(hash),
		Role:         RoleMember,
		Status:       StatusPending,
	}
	if email != "" {
		created.Email = &email
	}
	if phone != "" {
		created.Phone = &phone
	}

	if err := s.repo.CreateUser(ctx, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// Login verifies the password against the stored hash. bcrypt's comparison
// is constant-time.
func (s *Service) Login(ctx context.Context, input LoginInput) (*User, error) {
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if email == "" && phone == "" {
		return nil, ErrUserNotFound
	}

	found, err := s.repo.FindByLogin(ctx, email, phone)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return found, nil
}

func (s *Service) Get(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

// RequireApproved loads the user and fails unless they are APPROVED and
// attached to an organization.
func (s *Service) RequireApproved(ctx context.Context, userID string) (*User, error) {
	found, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if found.Status != StatusApproved {
		return nil, ErrNotApproved
	}
	if found.OrganizationID == nil {
		return nil, ErrNoOrganization
	}
	return found, nil
}

// RequireParent is the single authoritative parent check: the role field,
// which organization creation keeps in sync with ownership.
func (s *Service) RequireParent(ctx context.Context, userID string) (*User, error) {
	found, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if found.Role != RoleParent {
		return nil, ErrNotParent
	}
	if found.OrganizationID == nil {
		return nil, ErrNoOrganization
	}
	return found, nil
}

// ValidateRegister checks registration input without touching storage, so
// the HTTP boundary can reject bad requests before any query.
func ValidateRegister(input RegisterInput) error {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	return validateRegister(name, email, phone, input.Password)
}

func validateRegister(name, email, phone, password string) error {
	if len([]rune(name)) < minNameLength {
		return fmt.Errorf("name must be at least %d characters", minNameLength)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	if email == "" && phone == "" {
		return fmt.Errorf("email or phone is required")
	}
	if email != "" && !isEmail(email) {
		return fmt.Errorf("invalid email")
	}
	if phone != "" && !isPhone(phone) {
		return fmt.Errorf("invalid phone")
	}
	return nil
}

func isEmail(value string) bool {
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 {
		return false
	}
	domain := value[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(value, " \t")
}

func isPhone(value string) bool {
	digits := 0
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == ' ':
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 15
}
