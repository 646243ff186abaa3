package models

import "time"

// Student represents an enrolled student. RegNumber is the school-issued
// registration number used everywhere outside the database; the uuid ID is
// internal.
type Student struct {
	ID                string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	RegNumber         string           `json:"reg_number" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName         string           `json:"first_name" gorm:"not null" validate:"required"`
	LastName          string           `json:"last_name" gorm:"not null" validate:"required"`
	Gender            *Gender          `json:"gender,omitempty"`
	DateOfBirth       *time.Time       `json:"date_of_birth,omitempty" gorm:"type:date"`
	GradelevelClassID *string          `json:"gradelevel_class_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Password          string           `json:"-"` // portal login credential, bcrypt hash
	IsActive          bool             `json:"is_active" gorm:"default:true"`
	CreatedAt         time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt         *time.Time       `json:"deleted_at,omitempty" gorm:"index"`
	GradelevelClass   *GradelevelClass `json:"gradelevel_class,omitempty" gorm:"foreignKey:GradelevelClassID;references:ID"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
