package user

import "context"

type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	FindByLogin(ctx context.Context, email, phone string) (*User, error)
	ExistsByLogin(ctx context.Context, email, phone string) (bool, error)
}
