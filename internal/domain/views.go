package domain

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Pure derivations over a store snapshot. None of these mutate their input.

// ActiveRegistrations returns the subset that has not been cancelled,
// preserving insertion order.
func ActiveRegistrations(regs []*Registration) []*Registration {
	active := make([]*Registration, 0, len(regs))
	for _, r := range regs {
		if !r.Cancelled {
			active = append(active, r)
		}
	}
	return active
}

// SortByName returns a copy ordered by display name using Portuguese
// collation, case- and accent-insensitive, ascending.
func SortByName(regs []*Registration) []*Registration {
	sorted := make([]*Registration, len(regs))
	copy(sorted, regs)
	c := collate.New(language.EuropeanPortuguese, collate.Loose)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}

// CourseSelector picks one per-course answer from a registration. A nil
// result means the course was not collected for that registration.
type CourseSelector func(*Registration) *string

var (
	SelectMenu    CourseSelector = func(r *Registration) *string { return &r.Menu }
	SelectFish    CourseSelector = func(r *Registration) *string { return r.FishDish }
	SelectMeat    CourseSelector = func(r *Registration) *string { return r.MeatDish }
	SelectDessert CourseSelector = func(r *Registration) *string { return r.Dessert }
)

// MealTally counts, among active registrations only, the occurrences of each
// distinct non-empty value of the selected course. Absent and blank answers
// are excluded, never counted as a category.
func MealTally(regs []*Registration, course CourseSelector) map[string]int {
	tally := make(map[string]int)
	for _, r := range ActiveRegistrations(regs) {
		v := course(r)
		if v == nil || *v == "" {
			continue
		}
		tally[*v]++
	}
	return tally
}

const csvHeader = "Nome;Email;Telefone;Distrito;Concelho;Menu;Peixe;Carne;Sobremesa"

// RegistrationsCSV renders the given registrations as a semicolon-delimited
// CSV with a fixed header. Absent per-course answers render as empty fields.
// No quoting or escaping is performed: a semicolon or newline inside a field
// corrupts the row. Known limitation, kept on purpose.
func RegistrationsCSV(regs []*Registration) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	lines := make([]string, 0, len(regs))
	for _, r := range regs {
		lines = append(lines, strings.Join([]string{
			r.Name, r.Email, r.Phone, r.District, r.Municipality,
			r.Menu, deref(r.FishDish), deref(r.MeatDish), deref(r.Dessert),
		}, ";"))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
