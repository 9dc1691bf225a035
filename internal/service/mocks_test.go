package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"surveyshare/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockSurveyRepository is a mock implementation of SurveyRepository.
type MockSurveyRepository struct {
	mock.Mock
}

func (m *MockSurveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	args := m.Called(ctx, survey)
	return args.Error(0)
}

func (m *MockSurveyRepository) FindByIDWithOwner(ctx context.Context, id uint) (*model.SurveyWithOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SurveyWithOwner), args.Error(1)
}

func (m *MockSurveyRepository) List(ctx context.Context, category model.Category, sort string) ([]model.SurveyWithOwner, error) {
	args := m.Called(ctx, category, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SurveyWithOwner), args.Error(1)
}

func (m *MockSurveyRepository) ListOwned(ctx context.Context, userID uint) ([]model.Survey, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Survey), args.Error(1)
}

func (m *MockSurveyRepository) ListResponded(ctx context.Context, userID uint) ([]model.RespondedSurvey, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RespondedSurvey), args.Error(1)
}

func (m *MockSurveyRepository) Delete(ctx context.Context, id, requesterID uint) error {
	args := m.Called(ctx, id, requesterID)
	return args.Error(0)
}

func (m *MockSurveyRepository) HasResponse(ctx context.Context, surveyID, userID uint) (bool, error) {
	args := m.Called(ctx, surveyID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSurveyRepository) RecordResponse(ctx context.Context, surveyID, userID uint) error {
	args := m.Called(ctx, surveyID, userID)
	return args.Error(0)
}
