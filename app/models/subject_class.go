package models

import "time"

// SubjectClass is a subject as taught to one gradelevel class, e.g.
// "Mathematics - Form 2 Blue". Subject results reference it directly.
type SubjectClass struct {
	ID                string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	GradelevelClassID string           `json:"gradelevel_class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name              string           `json:"name" gorm:"not null" validate:"required"`
	Code              string           `json:"code" gorm:"not null" validate:"required"`
	TeacherID         *string          `json:"teacher_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive          bool             `json:"is_active" gorm:"default:true"`
	CreatedAt         time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt         *time.Time       `json:"deleted_at,omitempty" gorm:"index"`
	GradelevelClass   *GradelevelClass `json:"gradelevel_class,omitempty" gorm:"foreignKey:GradelevelClassID;references:ID"`
	Teacher           *User            `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}
