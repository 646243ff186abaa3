package classes

import (
	"database/sql"

	"github.com/tatenda10/sms-sub003/app/models"
)

// GetAllClasses returns active gradelevel classes with stream names and
// student counts
func GetAllClasses(db *sql.DB) ([]*models.GradelevelClass, error) {
	query := `
		SELECT c.id, c.name, c.code, c.stream_id, c.is_active,
			   c.created_at, c.updated_at,
			   s.id, s.name,
			   COUNT(st.id) as student_count
		FROM gradelevel_classes c
		LEFT JOIN streams s ON c.stream_id = s.id AND s.deleted_at IS NULL
		LEFT JOIN students st ON st.gradelevel_class_id = c.id
			AND st.is_active = true AND st.deleted_at IS NULL
		WHERE c.is_active = true AND c.deleted_at IS NULL
		GROUP BY c.id, c.name, c.code, c.stream_id, c.is_active,
				 c.created_at, c.updated_at, s.id, s.name
		ORDER BY c.name
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := make([]*models.GradelevelClass, 0)
	for rows.Next() {
		var class models.GradelevelClass
		var streamID, sID, sName sql.NullString

		err := rows.Scan(
			&class.ID, &class.Name, &class.Code, &streamID, &class.IsActive,
			&class.CreatedAt, &class.UpdatedAt,
			&sID, &sName, &class.StudentCount,
		)
		if err != nil {
			continue
		}

		if streamID.Valid {
			class.StreamID = &streamID.String
		}
		if sID.Valid {
			class.Stream = &models.Stream{ID: sID.String, Name: sName.String}
		}

		classes = append(classes, &class)
	}

	return classes, nil
}

// GetAllStreams returns active streams
func GetAllStreams(db *sql.DB) ([]*models.Stream, error) {
	query := `SELECT id, name, is_active, created_at, updated_at
			  FROM streams
			  WHERE is_active = true AND deleted_at IS NULL
			  ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	streams := make([]*models.Stream, 0)
	for rows.Next() {
		var stream models.Stream
		err := rows.Scan(&stream.ID, &stream.Name, &stream.IsActive,
			&stream.CreatedAt, &stream.UpdatedAt)
		if err != nil {
			continue
		}
		streams = append(streams, &stream)
	}

	return streams, nil
}

// GetSubjectClassesForClass returns the subjects taught to one class
func GetSubjectClassesForClass(db *sql.DB, classID string) ([]*models.SubjectClass, error) {
	query := `SELECT id, gradelevel_class_id, name, code, is_active, created_at, updated_at
			  FROM subject_classes
			  WHERE gradelevel_class_id = $1 AND is_active = true AND deleted_at IS NULL
			  ORDER BY name`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjectClasses := make([]*models.SubjectClass, 0)
	for rows.Next() {
		var sc models.SubjectClass
		err := rows.Scan(&sc.ID, &sc.GradelevelClassID, &sc.Name, &sc.Code,
			&sc.IsActive, &sc.CreatedAt, &sc.UpdatedAt)
		if err != nil {
			continue
		}
		subjectClasses = append(subjectClasses, &sc)
	}

	return subjectClasses, nil
}
