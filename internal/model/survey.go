package model

import "time"

// Category is the fixed set of survey categories.
type Category string

const (
	CategoryEngineering Category = "engineering"
	CategoryHumanities  Category = "humanities"
	CategorySocial      Category = "social"
	CategoryEconomics   Category = "economics"
	CategoryArts        Category = "arts"
	CategorySports      Category = "sports"
	CategoryEtc         Category = "etc"
)

// Categories lists every valid category value.
var Categories = []Category{
	CategoryEngineering,
	CategoryHumanities,
	CategorySocial,
	CategoryEconomics,
	CategoryArts,
	CategorySports,
	CategoryEtc,
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Survey is a shared survey link posted by a user.
// Only ResponseCount changes after creation.
type Survey struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"size:255;not null"`
	Description   string    `json:"description" gorm:"size:2000"`
	URL           string    `json:"url" gorm:"size:2048;not null"`
	Category      Category  `json:"category" gorm:"size:50;not null;index"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	ResponseCount uint      `json:"response_count" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations. The foreign keys back survey_responses rows with real
	// constraints, so a response can never outlive its survey.
	Responses []SurveyResponse `json:"-" gorm:"foreignKey:SurveyID"`
}

// SurveyWithOwner is a Survey joined with its owner's display name.
type SurveyWithOwner struct {
	Survey
	UserName string `json:"user_name" gorm:"column:user_name"`
}

// RespondedSurvey is a Survey annotated with when the viewer responded to it.
type RespondedSurvey struct {
	Survey
	RespondedAt time.Time `json:"responded_at" gorm:"column:responded_at"`
}
