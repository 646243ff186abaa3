package models

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// Terms are the school's academic sub-periods within a year.
const (
	Term1 = "1"
	Term2 = "2"
	Term3 = "3"
)
