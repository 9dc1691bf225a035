package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	errs "surveyshare/internal/errors"
	"surveyshare/internal/model"
	"surveyshare/internal/repository"
)

// Profile bundles a user's identity with their surveys and responses.
type Profile struct {
	User      model.PublicUser        `json:"user"`
	Surveys   []model.Survey          `json:"surveys"`
	Responses []model.RespondedSurvey `json:"responses"`
}

// UserService handles profile reads.
type UserService interface {
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
}

type userService struct {
	userRepo   repository.UserRepository
	surveyRepo repository.SurveyRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, surveyRepo repository.SurveyRepository) UserService {
	return &userService{
		userRepo:   userRepo,
		surveyRepo: surveyRepo,
	}
}

// GetProfile returns the user with their owned surveys (newest first) and
// responded surveys (most recent response first). A session whose user no
// longer exists yields ErrUserNotFound.
func (s *userService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	owned, err := s.surveyRepo.ListOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list owned surveys: %w", err)
	}

	responded, err := s.surveyRepo.ListResponded(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list responded surveys: %w", err)
	}

	return &Profile{
		User:      user.Public(),
		Surveys:   owned,
		Responses: responded,
	}, nil
}
