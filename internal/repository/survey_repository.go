package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"surveyshare/internal/model"
)

// Sort orders accepted by List.
const (
	SortLatest  = "latest"
	SortPopular = "popular"
)

// SurveyRepository defines survey and response persistence operations.
// Errors are reported as raw GORM errors; the service layer maps them
// onto the domain taxonomy.
type SurveyRepository interface {
	Create(ctx context.Context, survey *model.Survey) error
	FindByIDWithOwner(ctx context.Context, id uint) (*model.SurveyWithOwner, error)
	List(ctx context.Context, category model.Category, sort string) ([]model.SurveyWithOwner, error)
	ListOwned(ctx context.Context, userID uint) ([]model.Survey, error)
	ListResponded(ctx context.Context, userID uint) ([]model.RespondedSurvey, error)
	Delete(ctx context.Context, id, requesterID uint) error
	HasResponse(ctx context.Context, surveyID, userID uint) (bool, error)
	RecordResponse(ctx context.Context, surveyID, userID uint) error
}

type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new survey repository.
func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

// Create inserts a new survey row.
func (r *surveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	return r.db.WithContext(ctx).Create(survey).Error
}

// withOwner builds the surveys-joined-with-owner-name base query.
func (r *surveyRepository) withOwner(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("surveys").
		Select("surveys.*, users.name AS user_name").
		Joins("LEFT JOIN users ON users.id = surveys.user_id")
}

// FindByIDWithOwner finds a survey by ID joined with its owner's name.
func (r *surveyRepository) FindByIDWithOwner(ctx context.Context, id uint) (*model.SurveyWithOwner, error) {
	var row model.SurveyWithOwner
	err := r.withOwner(ctx).Where("surveys.id = ?", id).Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns a snapshot of surveys with owner names, optionally filtered
// by category. Popular sorting orders by response count, with creation time
// breaking ties; anything else falls back to newest first.
func (r *surveyRepository) List(ctx context.Context, category model.Category, sort string) ([]model.SurveyWithOwner, error) {
	query := r.withOwner(ctx)
	if category != "" {
		query = query.Where("surveys.category = ?", category)
	}
	if sort == SortPopular {
		query = query.Order("surveys.response_count DESC, surveys.created_at DESC")
	} else {
		query = query.Order("surveys.created_at DESC")
	}

	rows := []model.SurveyWithOwner{}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListOwned returns the surveys created by a user, newest first.
func (r *surveyRepository) ListOwned(ctx context.Context, userID uint) ([]model.Survey, error) {
	surveys := []model.Survey{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&surveys).Error
	if err != nil {
		return nil, err
	}
	return surveys, nil
}

// ListResponded returns the surveys a user has responded to, most recent
// response first.
func (r *surveyRepository) ListResponded(ctx context.Context, userID uint) ([]model.RespondedSurvey, error) {
	rows := []model.RespondedSurvey{}
	err := r.db.WithContext(ctx).
		Table("surveys").
		Select("surveys.*, survey_responses.created_at AS responded_at").
		Joins("JOIN survey_responses ON survey_responses.survey_id = surveys.id").
		Where("survey_responses.user_id = ?", userID).
		Order("survey_responses.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a survey and its responses in one transaction. The survey
// row is locked up front, which serializes deletion against a concurrent
// RecordResponse on the same survey. Both the locking read and the delete
// are constrained to id AND owner, so a non-owner observes the same
// gorm.ErrRecordNotFound as a missing survey. Responses go first to keep
// referential integrity inside the transaction.
func (r *surveyRepository) Delete(ctx context.Context, id, requesterID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var survey model.Survey
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", id, requesterID).
			First(&survey).Error
		if err != nil {
			return err
		}
		if err := tx.Where("survey_id = ?", id).Delete(&model.SurveyResponse{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", id, requesterID).Delete(&model.Survey{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// HasResponse reports whether the user already responded to the survey.
// Callers must treat this as an optimization only; the unique index inside
// RecordResponse is what actually prevents double responses.
func (r *surveyRepository) HasResponse(ctx context.Context, surveyID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SurveyResponse{}).
		Where("survey_id = ? AND user_id = ?", surveyID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RecordResponse inserts a response row and bumps the survey's denormalized
// counter in one transaction. The survey row is read under a lock so a
// concurrent Delete cannot commit between the existence check and the
// insert. A concurrent duplicate fails the insert with
// gorm.ErrDuplicatedKey and rolls the whole thing back, so the counter and
// the response rows never diverge.
func (r *surveyRepository) RecordResponse(ctx context.Context, surveyID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var survey model.Survey
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&survey, surveyID).Error; err != nil {
			return err
		}

		response := model.SurveyResponse{SurveyID: surveyID, UserID: userID}
		if err := tx.Create(&response).Error; err != nil {
			return err
		}

		return tx.Model(&model.Survey{}).
			Where("id = ?", surveyID).
			UpdateColumn("response_count", gorm.Expr("response_count + ?", 1)).Error
	})
}
