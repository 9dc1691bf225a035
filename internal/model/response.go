package model

import "time"

// SurveyResponse records that a user responded to a survey.
// The (survey_id, user_id) unique index is the source of truth for the
// one-response-per-user rule; concurrent duplicates fail on insert.
type SurveyResponse struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SurveyID  uint      `json:"survey_id" gorm:"not null;uniqueIndex:idx_survey_user"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_survey_user"`
	CreatedAt time.Time `json:"created_at"`
}
