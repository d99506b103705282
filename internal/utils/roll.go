package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// rollPattern matches institute roll numbers: four-digit entry year, a
// two-letter department code, five-digit serial (e.g. "2021CS10001").
var rollPattern = regexp.MustCompile(`^(\d{4})(CS|ME|EE|CE|CH|BT|MM|PH|MA|MC|MS|MT)\d{5}$`)

var departments = map[string]string{
	"CS": "Computer Science",
	"ME": "Mechanical Engineering",
	"EE": "Electrical Engineering",
	"CE": "Civil Engineering",
	"CH": "Chemical Engineering",
	"BT": "Biotechnology",
	"MM": "Metallurgical Engineering",
	"PH": "Physics",
	"MA": "Mathematics",
	"MC": "Mathematics and Computing",
	"MS": "Mathematics and Scientific Computing",
	"MT": "Mathematics and Statistics",
}

// DepartmentFromRoll derives the department name from a roll number.
// Returns "" when the roll number does not follow the institute format.
func DepartmentFromRoll(roll string) string {
	m := rollPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(roll)))
	if m == nil {
		return ""
	}
	if name, ok := departments[m[2]]; ok {
		return name
	}
	return m[2]
}

// YearFromRoll derives the current year of study from the entry year
// encoded in the roll number, clamped to 1..5. Unparseable or out-of-range
// values fall back to 1.
func YearFromRoll(roll string) int {
	m := rollPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(roll)))
	if m == nil {
		return 1
	}
	entry, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	y := time.Now().Year() - entry + 1
	if y < 1 || y > 5 {
		return 1
	}
	return y
}
