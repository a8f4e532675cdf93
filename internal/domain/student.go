package domain

// Grade is a letter grade derived from a score
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// MinScore and MaxScore bound a valid roster score
const (
	MinScore = 0
	MaxScore = 100
)

// Student is a single roster entry
type Student struct {
	ID       int    `json:"id" yaml:"id"`
	FullName string `json:"full_name" yaml:"full_name"`
	Score    int    `json:"score" yaml:"score"`
}

// NewStudent creates a student record
func NewStudent(id int, fullName string, score int) *Student {
	return &Student{ID: id, FullName: fullName, Score: score}
}

// EntityID returns the student id
func (s *Student) EntityID() int {
	return s.ID
}

// Grade returns the letter grade for the student's score
func (s *Student) Grade() Grade {
	return GradeFor(s.Score)
}

// GradeFor maps a score to its letter grade. Scores outside 0-100 are an F.
func GradeFor(score int) Grade {
	switch {
	case score >= 80 && score <= 100:
		return GradeA
	case score >= 70 && score <= 79:
		return GradeB
	case score >= 60 && score <= 69:
		return GradeC
	case score >= 50 && score <= 59:
		return GradeD
	default:
		return GradeF
	}
}
