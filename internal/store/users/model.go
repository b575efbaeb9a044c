package users

import "time"

type UserInfo struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NewUserModel struct {
	Username     string
	Email        string
	PasswordHash string
}

type UpdateUserModel struct {
	Username     string
	Email        string
	PasswordHash string
}

type Credentials struct {
	Id           int
	PasswordHash string
}
