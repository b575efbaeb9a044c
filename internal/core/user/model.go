package user

import "errors"

type ServiceRegisterModel struct {
	Username string
	Email    string
	Password string
}

type ServiceUpdateModel struct {
	Username string
	Email    string
	Password string
}

type ServiceLoginModel struct {
	Username string
	Password string
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)
