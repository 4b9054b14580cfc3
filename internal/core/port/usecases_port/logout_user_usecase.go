package usecases_port

import "context"

type LogoutUserUseCasePort interface {
	Execute(ctx context.Context, tokenString string) error
}
