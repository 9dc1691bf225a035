package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	errs "surveyshare/internal/errors"
	"surveyshare/internal/model"
)

func TestUserService_GetProfile(t *testing.T) {
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		surveyRepo := new(MockSurveyRepository)

		userRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
			ID:           1,
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: "hash",
		}, nil)
		surveyRepo.On("ListOwned", mock.Anything, uint(1)).Return([]model.Survey{
			{ID: 2, CreatedAt: now},
			{ID: 1, CreatedAt: now.Add(-time.Hour)},
		}, nil)
		surveyRepo.On("ListResponded", mock.Anything, uint(1)).Return([]model.RespondedSurvey{
			{Survey: model.Survey{ID: 7}, RespondedAt: now},
		}, nil)

		service := NewUserService(userRepo, surveyRepo)
		profile, err := service.GetProfile(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, model.PublicUser{ID: 1, Name: "Alice", Email: "alice@example.com"}, profile.User)
		assert.Len(t, profile.Surveys, 2)
		assert.Len(t, profile.Responses, 1)

		userRepo.AssertExpectations(t)
		surveyRepo.AssertExpectations(t)
	})

	t.Run("session for deleted user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		surveyRepo := new(MockSurveyRepository)
		userRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(userRepo, surveyRepo)
		profile, err := service.GetProfile(context.Background(), 42)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.Nil(t, profile)
		surveyRepo.AssertNotCalled(t, "ListOwned")
	})
}
