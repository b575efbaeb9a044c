package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"wordsolver/internal/auth"
	"wordsolver/internal/store/revoked"
	"wordsolver/internal/store/users"
)

func NewUserService(userStore users.UserStoreHandler, revokedStore revoked.RevokedStoreHandler, tokenHandler auth.TokenServiceHandler) *UserService {
	return &UserService{
		userStore:    userStore,
		revokedStore: revokedStore,
		tokenHandler: tokenHandler,
	}
}

type UserService struct {
	userStore    users.UserStoreHandler
	revokedStore revoked.RevokedStoreHandler
	tokenHandler auth.TokenServiceHandler
}

func (s *UserService) Register(ctx context.Context, m ServiceRegisterModel) (int, error) {
	if m.Username == "" || m.Password == "" {
		return 0, fmt.Errorf("username and password must not be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	return s.userStore.Insert(ctx, users.NewUserModel{
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: string(hashed),
	})
}

func (s *UserService) List(ctx context.Context) ([]users.UserInfo, error) {
	return s.userStore.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int) (users.UserInfo, error) {
	return s.userStore.GetById(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int, m ServiceUpdateModel) error {
	if m.Username == "" || m.Password == "" {
		return fmt.Errorf("username and password must not be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(m.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.userStore.Update(ctx, id, users.UpdateUserModel{
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: string(hashed),
	})
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.userStore.Delete(ctx, id)
}

// Login validates the credentials and issues a JWT. The caller cannot tell
// an unknown user from a wrong password.
func (s *UserService) Login(ctx context.Context, m ServiceLoginModel) (string, error) {
	creds, err := s.userStore.GetCredentials(ctx, m.Username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(m.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenHandler.Generate(creds.Id)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

func (s *UserService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token must not be empty")
	}
	return s.revokedStore.Insert(ctx, token)
}

// Authorize verifies the bearer token signature, expiry and revocation
// state, returning the authenticated user id.
func (s *UserService) Authorize(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrUnauthorized
	}

	claims, err := s.tokenHandler.Verify(token)
	if err != nil {
		return 0, ErrUnauthorized
	}

	isRevoked, err := s.revokedStore.IsRevoked(ctx, token)
	if err != nil {
		return 0, fmt.Errorf("check revocation: %w", err)
	}
	if isRevoked {
		return 0, ErrUnauthorized
	}

	return claims.UserId, nil
}
