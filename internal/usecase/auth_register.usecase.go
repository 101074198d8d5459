package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portal-auth-service/internal/domain"
	"portal-auth-service/pkg/utils"
	xerrors "portal-auth-service/pkg/utils/errors"
)

// RegisterUser validates the signup fields, hashes the password and stores the
// new user. Validation runs before the store is touched; the email uniqueness
// check is left to the repository's atomic insert.
func (uc *UserUsecase) RegisterUser(ctx context.Context, firstName, lastName, email, phone, password string) (*domain.User, error) {
	if firstName == "" {
		return nil, xerrors.ErrFirstNameRequired
	}
	if lastName == "" {
		return nil, xerrors.ErrLastNameRequired
	}
	if email == "" {
		return nil, xerrors.ErrEmailRequired
	}
	if phone == "" {
		return nil, xerrors.ErrPhoneRequired
	}
	if password == "" {
		return nil, xerrors.ErrPasswordRequired
	}
	if !utils.ValidateEmail(email) {
		return nil, xerrors.ErrInvalidEmailFormat
	}
	if valid, err := utils.ValidatePassword(password); !valid {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	newUser := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    time.Now(),
	}

	return uc.userRepo.CreateUser(ctx, newUser)
}
