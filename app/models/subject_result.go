package models

import "time"

// SubjectResult stores a student's recorded marks for one subject in a term.
// TotalMark, Grade and Points are derived from the coursework/paper marks on
// every read; they are never written back to the database.
type SubjectResult struct {
	ID                string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID         string            `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectClassID    string            `json:"subject_class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	GradelevelClassID string            `json:"gradelevel_class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Term              string            `json:"term" gorm:"not null;index" validate:"required"`
	AcademicYear      string            `json:"academic_year" gorm:"not null;index" validate:"required"`
	CourseworkMark    *float64          `json:"coursework_mark,omitempty" gorm:"type:decimal(5,2)" validate:"omitempty,gte=0,lte=100"`
	CreatedAt         time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt         *time.Time        `json:"deleted_at,omitempty" gorm:"index"`
	PaperMarks        []*PaperMark      `json:"paper_marks,omitempty" gorm:"foreignKey:SubjectResultID;references:ID"`
	Student           *Student          `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	SubjectClass      *SubjectClass     `json:"subject_class,omitempty" gorm:"foreignKey:SubjectClassID;references:ID"`
	GradelevelClass   *GradelevelClass  `json:"gradelevel_class,omitempty" gorm:"foreignKey:GradelevelClassID;references:ID"`

	// Derived per request, never persisted
	TotalMark float64 `json:"total_mark" gorm:"-"`
	Grade     string  `json:"grade" gorm:"-"`
	Points    int     `json:"points" gorm:"-"`
}

// PaperMark stores one exam paper score belonging to a subject result
type PaperMark struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	SubjectResultID string     `json:"subject_result_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	PaperName       string     `json:"paper_name" gorm:"not null" validate:"required"`
	Mark            float64    `json:"mark" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// CohortPosition is a student's dense-rank position within a class or stream
// for a term. It is computed on demand and never persisted.
type CohortPosition struct {
	StudentRegNumber string  `json:"student_reg_number"`
	Position         int     `json:"position"`
	AverageMark      float64 `json:"average_mark"`
}
