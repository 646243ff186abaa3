package fees

import (
	"database/sql"
	"fmt"

	"github.com/tatenda10/sms-sub003/app/models"
)

// NewBalanceStatus derives the portal visibility verdict from an outstanding
// balance: results are viewable only when nothing is owed.
func NewBalanceStatus(regNumber string, balance float64) *models.BalanceStatus {
	return &models.BalanceStatus{
		StudentRegNumber: regNumber,
		CurrentBalance:   balance,
		CanViewResults:   balance <= 0,
	}
}

// GetBalanceStatus computes a student's outstanding balance and the portal
// visibility flag. Outstanding = sum of unpaid, non-deleted fees.
func GetBalanceStatus(db *sql.DB, student *models.Student) (*models.BalanceStatus, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM fees
		WHERE student_id = $1 AND paid = false AND deleted_at IS NULL
	`

	var balance float64
	if err := db.QueryRow(query, student.ID).Scan(&balance); err != nil {
		return nil, fmt.Errorf("failed to compute balance: %w", err)
	}

	return NewBalanceStatus(student.RegNumber, balance), nil
}

// MarkOverdueFees flags unpaid fees whose due date has passed. Called by the
// scheduler once a day.
func MarkOverdueFees(db *sql.DB) (int64, error) {
	query := `
		UPDATE fees
		SET overdue = true, updated_at = NOW()
		WHERE paid = false AND overdue = false AND due_date < CURRENT_DATE AND deleted_at IS NULL
	`

	res, err := db.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("failed to mark overdue fees: %w", err)
	}

	return res.RowsAffected()
}
