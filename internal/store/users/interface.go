package users

import "context"

type UserStoreHandler interface {
	Insert(ctx context.Context, user NewUserModel) (int, error)
	List(ctx context.Context) ([]UserInfo, error)
	GetById(ctx context.Context, id int) (UserInfo, error)
	Update(ctx context.Context, id int, user UpdateUserModel) error
	Delete(ctx context.Context, id int) error
	GetCredentials(ctx context.Context, username string) (Credentials, error)
	EnsureSchema(ctx context.Context) error
}
