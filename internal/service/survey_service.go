package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"gorm.io/gorm"

	"surveyshare/internal/cache"
	errs "surveyshare/internal/errors"
	"surveyshare/internal/model"
	"surveyshare/internal/repository"
)

const surveyCacheTTL = 30 * time.Second

// SurveyService handles survey listing, creation, deletion, and responses.
type SurveyService interface {
	List(ctx context.Context, category model.Category, sort string) ([]model.SurveyWithOwner, error)
	Create(ctx context.Context, ownerID uint, title, description, rawURL string, category model.Category) (*model.SurveyWithOwner, error)
	GetByID(ctx context.Context, id uint) (*model.SurveyWithOwner, error)
	Delete(ctx context.Context, id, requesterID uint) error
	Respond(ctx context.Context, surveyID, userID uint) error
}

type surveyService struct {
	surveyRepo repository.SurveyRepository
	userRepo   repository.UserRepository
	cache      *cache.Client
}

// NewSurveyService creates a new survey service.
func NewSurveyService(surveyRepo repository.SurveyRepository, userRepo repository.UserRepository, cache *cache.Client) SurveyService {
	return &surveyService{
		surveyRepo: surveyRepo,
		userRepo:   userRepo,
		cache:      cache,
	}
}

func surveyKey(id uint) string {
	return fmt.Sprintf("survey:%d", id)
}

func listKey(category model.Category, sort string) string {
	if category == "" {
		return fmt.Sprintf("surveys:all:%s", sort)
	}
	return fmt.Sprintf("surveys:%s:%s", category, sort)
}

// listKeys are the list cache entries a mutation of a survey in the given
// category can stale.
func listKeys(category model.Category) []string {
	return []string{
		listKey("", repository.SortLatest),
		listKey("", repository.SortPopular),
		listKey(category, repository.SortLatest),
		listKey(category, repository.SortPopular),
	}
}

// normalizeSort collapses anything that is not "popular" onto "latest".
func normalizeSort(sort string) string {
	if sort == repository.SortPopular {
		return repository.SortPopular
	}
	return repository.SortLatest
}

// List returns surveys joined with owner names, filtered and sorted.
// Snapshots are cached briefly per (category, sort) pair.
func (s *surveyService) List(ctx context.Context, category model.Category, sort string) ([]model.SurveyWithOwner, error) {
	sort = normalizeSort(sort)
	key := listKey(category, sort)

	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.SurveyWithOwner
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	surveys, err := s.surveyRepo.List(ctx, category, sort)
	if err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}

	if payload, err := json.Marshal(surveys); err == nil {
		_ = s.cache.Set(ctx, key, payload, surveyCacheTTL)
	}

	return surveys, nil
}

// validateSurveyInput checks the create invariants: title, url, and
// category present, the url a well-formed absolute URL, and the category
// one of the enumerated values.
func validateSurveyInput(title, rawURL string, category model.Category) error {
	if title == "" || rawURL == "" || category == "" {
		return fmt.Errorf("%w: title, url, and category are required", errs.ErrValidation)
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("%w: url must be a valid absolute URL", errs.ErrValidation)
	}
	if !category.Valid() {
		return fmt.Errorf("%w: unknown category %q", errs.ErrValidation, category)
	}
	return nil
}

// Create validates input, confirms the owner still exists, and inserts the
// survey with a zero response count. The returned row carries the owner's
// name, matching what listing would produce.
func (s *surveyService) Create(ctx context.Context, ownerID uint, title, description, rawURL string, category model.Category) (*model.SurveyWithOwner, error) {
	if err := validateSurveyInput(title, rawURL, category); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("check owner: %w", err)
	}

	survey := &model.Survey{
		Title:       title,
		Description: description,
		URL:         rawURL,
		Category:    category,
		UserID:      ownerID,
	}
	if err := s.surveyRepo.Create(ctx, survey); err != nil {
		return nil, fmt.Errorf("create survey: %w", err)
	}

	_ = s.cache.Delete(ctx, listKeys(category)...)

	created, err := s.surveyRepo.FindByIDWithOwner(ctx, survey.ID)
	if err != nil {
		return nil, fmt.Errorf("read back survey: %w", err)
	}
	return created, nil
}

// GetByID returns a survey with its owner's name, cached by id.
func (s *surveyService) GetByID(ctx context.Context, id uint) (*model.SurveyWithOwner, error) {
	if data, _ := s.cache.Get(ctx, surveyKey(id)); data != nil {
		var cached model.SurveyWithOwner
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	survey, err := s.surveyRepo.FindByIDWithOwner(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("get survey: %w", err)
	}

	if payload, err := json.Marshal(survey); err == nil {
		_ = s.cache.Set(ctx, surveyKey(id), payload, surveyCacheTTL)
	}

	return survey, nil
}

// Delete removes a survey owned by the requester along with its responses.
// A missing survey and a survey owned by someone else are both reported as
// not found.
func (s *surveyService) Delete(ctx context.Context, id, requesterID uint) error {
	survey, err := s.surveyRepo.FindByIDWithOwner(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrSurveyNotFound
		}
		return fmt.Errorf("get survey: %w", err)
	}

	if err := s.surveyRepo.Delete(ctx, id, requesterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.ErrSurveyNotFound
		}
		return fmt.Errorf("delete survey: %w", err)
	}

	_ = s.cache.Delete(ctx, append(listKeys(survey.Category), surveyKey(id))...)
	return nil
}

// Respond records a response and bumps the counter. The HasResponse
// pre-check gives early feedback; the unique index inside RecordResponse
// is what makes a concurrent duplicate lose.
func (s *surveyService) Respond(ctx context.Context, surveyID, userID uint) error {
	responded, err := s.surveyRepo.HasResponse(ctx, surveyID, userID)
	if err != nil {
		return fmt.Errorf("check response: %w", err)
	}
	if responded {
		return errs.ErrAlreadyResponded
	}

	if err := s.surveyRepo.RecordResponse(ctx, surveyID, userID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return errs.ErrAlreadyResponded
		case errors.Is(err, gorm.ErrRecordNotFound):
			return errs.ErrSurveyNotFound
		default:
			return fmt.Errorf("record response: %w", err)
		}
	}

	survey, err := s.surveyRepo.FindByIDWithOwner(ctx, surveyID)
	if err == nil {
		_ = s.cache.Delete(ctx, append(listKeys(survey.Category), surveyKey(surveyID))...)
	}
	return nil
}
