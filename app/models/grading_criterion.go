package models

import "time"

// GradingCriterion represents a grading band, e.g., A: 80-100 worth 12 points
type GradingCriterion struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Grade     string     `json:"grade" gorm:"uniqueIndex;not null" validate:"required"`
	MinMark   float64    `json:"min_mark" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	MaxMark   float64    `json:"max_mark" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	Points    int        `json:"points" gorm:"not null;default:0" validate:"gte=0"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// Matches reports whether the mark falls inside the criterion's inclusive range.
func (g *GradingCriterion) Matches(mark float64) bool {
	return mark >= g.MinMark && mark <= g.MaxMark
}
