package models

import "time"

// Fee represents an actual charge for a specific student within a term.
type Fee struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID    string     `json:"student_id" gorm:"not null;index;type:uuid"`
	Term         *string    `json:"term,omitempty" gorm:"index"`
	AcademicYear *string    `json:"academic_year,omitempty" gorm:"index"`
	Title        string     `json:"title" gorm:"not null"`
	Amount       float64    `json:"amount" gorm:"not null;type:numeric"`
	Currency     string     `json:"currency" gorm:"not null;default:'USD'"`
	Paid         bool       `json:"paid" gorm:"default:false"`
	Overdue      bool       `json:"overdue" gorm:"default:false"`
	DueDate      time.Time  `json:"due_date" gorm:"not null;type:date"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at" gorm:"default:now()"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"default:now()"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Student      *Student   `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// MarkAsPaid marks the fee as fully paid.
func (f *Fee) MarkAsPaid() {
	f.Paid = true
	f.Overdue = false
	now := time.Now()
	f.PaidAt = &now
}

// BalanceStatus is the billing subsystem's verdict on a student's account.
// CanViewResults gates the student portal's results views.
type BalanceStatus struct {
	StudentRegNumber string  `json:"student_reg_number"`
	CurrentBalance   float64 `json:"current_balance"`
	CanViewResults   bool    `json:"can_view_results"`
}
