package usecase

import (
	"context"
	"errors"

	"portal-auth-service/internal/domain"
	"portal-auth-service/pkg/utils"
	xerrors "portal-auth-service/pkg/utils/errors"
)

// LoginUser authenticates email+password. An unknown email and a wrong
// password both come back as ErrInvalidCredentials so no caller can tell
// which factor failed.
func (uc *UserUsecase) LoginUser(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, xerrors.ErrInvalidCredentials
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			return nil, xerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, xerrors.ErrInvalidCredentials
	}

	return user, nil
}
