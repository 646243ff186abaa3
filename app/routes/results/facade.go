package results

import (
	"database/sql"
	"math"

	"github.com/tatenda10/sms-sub003/app/academics"
	"github.com/tatenda10/sms-sub003/app/database"
	"github.com/tatenda10/sms-sub003/app/models"
	"github.com/tatenda10/sms-sub003/app/routes/criteria"
)

// StudentReport is one student's derived results for a class, term and year.
// Positions are present only when the student has at least one result.
type StudentReport struct {
	Student        *models.Student         `json:"student,omitempty"`
	Results        []*models.SubjectResult `json:"results"`
	Count          int                     `json:"count"`
	ClassPosition  *models.CohortPosition  `json:"class_position,omitempty"`
	StreamPosition *models.CohortPosition  `json:"stream_position,omitempty"`
}

// ClassReportRow is one student's line in the whole-class view.
type ClassReportRow struct {
	StudentRegNumber string  `json:"student_reg_number"`
	StudentName      string  `json:"student_name"`
	AverageMark      float64 `json:"average_mark"`
	Grade            string  `json:"grade"`
	Points           int     `json:"points"`
	Position         int     `json:"position"`
	Subjects         int     `json:"subjects"`
}

// Derive recomputes the total mark, grade and points of every result from its
// raw coursework/paper marks. Stored derived values are never trusted; this
// runs on every read.
func Derive(results []*models.SubjectResult, crits []*models.GradingCriterion) {
	for _, r := range results {
		marks := make([]float64, 0, len(r.PaperMarks))
		for _, pm := range r.PaperMarks {
			marks = append(marks, pm.Mark)
		}
		r.TotalMark = academics.Aggregate(r.CourseworkMark, marks)
		r.Grade, r.Points = academics.ResolveGrade(r.TotalMark, crits)
	}
}

// CohortEntries collapses per-subject results into one averaged entry per
// student, keyed by reg number. Derive must have run on the results first.
func CohortEntries(results []*models.SubjectResult) []academics.RankEntry {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, r := range results {
		if r.Student == nil {
			continue
		}
		reg := r.Student.RegNumber
		if _, seen := counts[reg]; !seen {
			order = append(order, reg)
		}
		sums[reg] += r.TotalMark
		counts[reg]++
	}

	entries := make([]academics.RankEntry, 0, len(order))
	for _, reg := range order {
		avg := math.Round(sums[reg]/float64(counts[reg])*100) / 100
		entries = append(entries, academics.RankEntry{
			StudentRegNumber: reg,
			AverageMark:      avg,
		})
	}

	return entries
}

// BuildStudentReport assembles a single student's derived results plus class
// and stream positions. A missing student or class yields an empty report
// with a zero count rather than an error.
func BuildStudentReport(db *sql.DB, regNumber, classID, term, academicYear string) (*StudentReport, error) {
	report := &StudentReport{Results: []*models.SubjectResult{}}

	student, err := database.GetStudentByRegNumber(db, regNumber)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return report, nil
	}
	report.Student = student

	class, err := database.GetClassByID(db, classID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return report, nil
	}

	crits, err := criteria.GetAllCriteria(db)
	if err != nil {
		return nil, err
	}

	results, err := GetSubjectResultsForStudent(db, student.ID, classID, term, academicYear)
	if err != nil {
		return nil, err
	}
	Derive(results, crits)
	report.Results = results
	report.Count = len(results)

	if len(results) == 0 {
		return report, nil
	}

	classPositions, err := rankCohort(db, []string{classID}, term, academicYear, crits)
	if err != nil {
		return nil, err
	}
	report.ClassPosition = academics.PositionFor(classPositions, regNumber)

	if class.StreamID != nil {
		streamClassIDs, err := database.GetClassIDsByStreamID(db, *class.StreamID)
		if err != nil {
			return nil, err
		}
		streamPositions, err := rankCohort(db, streamClassIDs, term, academicYear, crits)
		if err != nil {
			return nil, err
		}
		report.StreamPosition = academics.PositionFor(streamPositions, regNumber)
	}

	return report, nil
}

// BuildClassReport assembles the whole-class view: one averaged, graded and
// ranked row per student with recorded results.
func BuildClassReport(db *sql.DB, classID, term, academicYear string) ([]*ClassReportRow, error) {
	crits, err := criteria.GetAllCriteria(db)
	if err != nil {
		return nil, err
	}

	cohort, err := GetSubjectResultsForCohort(db, []string{classID}, term, academicYear)
	if err != nil {
		return nil, err
	}
	Derive(cohort, crits)

	names := make(map[string]string)
	subjects := make(map[string]int)
	for _, r := range cohort {
		if r.Student != nil {
			names[r.Student.RegNumber] = r.Student.FullName()
			subjects[r.Student.RegNumber]++
		}
	}

	positions := academics.Rank(CohortEntries(cohort))

	rows := make([]*ClassReportRow, 0, len(positions))
	for _, p := range positions {
		grade, points := academics.ResolveGrade(p.AverageMark, crits)
		rows = append(rows, &ClassReportRow{
			StudentRegNumber: p.StudentRegNumber,
			StudentName:      names[p.StudentRegNumber],
			AverageMark:      p.AverageMark,
			Grade:            grade,
			Points:           points,
			Position:         p.Position,
			Subjects:         subjects[p.StudentRegNumber],
		})
	}

	return rows, nil
}

func rankCohort(db *sql.DB, classIDs []string, term, academicYear string, crits []*models.GradingCriterion) ([]*models.CohortPosition, error) {
	cohort, err := GetSubjectResultsForCohort(db, classIDs, term, academicYear)
	if err != nil {
		return nil, err
	}
	Derive(cohort, crits)
	return academics.Rank(CohortEntries(cohort)), nil
}
