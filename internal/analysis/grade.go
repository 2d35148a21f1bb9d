package analysis

// Grade is a letter rating derived from the total score.
type Grade string

// Grades from best to worst.
const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// GradeFor maps a total score to a grade.
func GradeFor(total int) Grade {
	switch {
	case total >= 90:
		return GradeS
	case total >= 80:
		return GradeA
	case total >= 70:
		return GradeB
	case total >= 60:
		return GradeC
	default:
		return GradeD
	}
}
