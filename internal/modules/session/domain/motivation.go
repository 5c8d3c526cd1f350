package domain

var motivations = [...]string{
	"Nice focus! Keep it up.",
	"You're doing great, keep pushing!",
	"Awesome job! Stay consistent!",
	"Small sessions add up to big wins.",
}

// Motivation returns the message shown after the study phase of loop (1-based).
// Messages cycle once the list is exhausted.
func Motivation(loop int) string {
	n := len(motivations)
	idx := ((loop-1)%n + n) % n
	return motivations[idx]
}

func MotivationCount() int {
	return len(motivations)
}
