package auth

type TokenServiceHandler interface {
	Generate(userId int) (string, error)
	Verify(token string) (*Claims, error)
}
