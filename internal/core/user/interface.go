package user

import (
	"context"

	"wordsolver/internal/store/users"
)

type UserServiceHandler interface {
	Register(ctx context.Context, m ServiceRegisterModel) (int, error)
	List(ctx context.Context) ([]users.UserInfo, error)
	Get(ctx context.Context, id int) (users.UserInfo, error)
	Update(ctx context.Context, id int, m ServiceUpdateModel) error
	Delete(ctx context.Context, id int) error
	Login(ctx context.Context, m ServiceLoginModel) (string, error)
	Revoke(ctx context.Context, token string) error
	Authorize(ctx context.Context, token string) (int, error)
}
