package user

// == register ==
type RegisterUserRequest struct {
	Username string `json:"username" example:"aidan"`
	Email    string `json:"email" example:"aidan@example.com"`
	Password string `json:"password" example:"hunter2"`
}

type RegisterUserResponse struct {
	Id int `json:"id"`
}

// == list / get ==
type UserSummary struct {
	Id        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type GetUserListResponse struct {
	Users []UserSummary `json:"users"`
}

type GetUserResponse struct {
	User UserSummary `json:"user"`
}

// == update ==
type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// == login ==
type LoginRequest struct {
	Username string `json:"username" example:"aidan"`
	Password string `json:"password" example:"hunter2"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// == revoke ==
type RevokeTokenRequest struct {
	Token string `json:"token"`
}
