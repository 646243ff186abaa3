package announcements

import (
	"database/sql"
	"fmt"

	"github.com/tatenda10/sms-sub003/app/models"
)

// GetPublishedAnnouncements fetches announcements visible on the portal.
func GetPublishedAnnouncements(db *sql.DB) ([]*models.Announcement, error) {
	query := `
		SELECT id, title, body, is_published, published_at, created_at, updated_at
		FROM announcements
		WHERE is_published = true AND deleted_at IS NULL
		ORDER BY published_at DESC
	`
	return queryAnnouncements(db, query)
}

// GetAllAnnouncements fetches all announcements for the staff dashboard.
func GetAllAnnouncements(db *sql.DB) ([]*models.Announcement, error) {
	query := `
		SELECT id, title, body, is_published, published_at, created_at, updated_at
		FROM announcements
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`
	return queryAnnouncements(db, query)
}

func queryAnnouncements(db *sql.DB, query string) ([]*models.Announcement, error) {
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		var publishedAt sql.NullTime

		err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.IsPublished, &publishedAt, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		if publishedAt.Valid {
			a.PublishedAt = &publishedAt.Time
		}
		announcements = append(announcements, &a)
	}

	return announcements, nil
}

// CreateAnnouncement inserts a new announcement record
func CreateAnnouncement(db *sql.DB, a *models.Announcement) error {
	query := `
		INSERT INTO announcements (title, body, is_published, published_at)
		VALUES ($1, $2, $3, CASE WHEN $3 THEN NOW() ELSE NULL END)
		RETURNING id, published_at, created_at, updated_at
	`

	var publishedAt sql.NullTime
	err := db.QueryRow(query, a.Title, a.Body, a.IsPublished).Scan(
		&a.ID, &publishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	if publishedAt.Valid {
		a.PublishedAt = &publishedAt.Time
	}

	return nil
}

// PublishAnnouncement marks an announcement as published.
func PublishAnnouncement(db *sql.DB, id string) error {
	query := `
		UPDATE announcements
		SET is_published = true, published_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	res, err := db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to publish announcement: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// DeleteAnnouncement soft deletes an announcement
func DeleteAnnouncement(db *sql.DB, id string) error {
	query := `UPDATE announcements SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, id)
	return err
}
