package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func reg(id int, name string, cancelled bool, fish, meat, dessert *string) *Registration {
	return &Registration{
		ID:           id,
		Name:         name,
		Phone:        "911111111",
		Email:        strings.ToLower(name) + "@example.com",
		District:     "Lisboa",
		Municipality: "Torres Vedras",
		Menu:         "Menu Adulto",
		FishDish:     fish,
		MeatDish:     meat,
		Dessert:      dessert,
		Cancelled:    cancelled,
	}
}

func TestActiveRegistrations(t *testing.T) {
	regs := []*Registration{
		reg(1, "Ana", false, nil, nil, nil),
		reg(2, "Bruno", true, nil, nil, nil),
		reg(3, "Carla", false, nil, nil, nil),
	}

	active := ActiveRegistrations(regs)
	require.Len(t, active, 2)
	assert.Equal(t, 1, active[0].ID)
	assert.Equal(t, 3, active[1].ID)
}

func TestSortByName_PortugueseCollation(t *testing.T) {
	regs := []*Registration{
		reg(1, "bruno", false, nil, nil, nil),
		reg(2, "Álvaro", false, nil, nil, nil),
		reg(3, "ana", false, nil, nil, nil),
	}

	sorted := SortByName(regs)
	var names []string
	for _, r := range sorted {
		names = append(names, r.Name)
	}
	// Accent- and case-insensitive: Álvaro sorts before ana and bruno.
	assert.Equal(t, []string{"Álvaro", "ana", "bruno"}, names)

	// Input order untouched.
	assert.Equal(t, "bruno", regs[0].Name)
}

func TestMealTally(t *testing.T) {
	empty := ""
	regs := []*Registration{
		reg(1, "Ana", false, strPtr("Bacalhau"), nil, nil),
		reg(2, "Bruno", false, strPtr("Bacalhau"), nil, nil),
		reg(3, "Carla", false, strPtr("Robalo"), nil, nil),
		reg(4, "Diogo", true, strPtr("Bacalhau"), nil, nil),  // cancelled, excluded
		reg(5, "Eva", false, nil, nil, nil),                  // not collected, excluded
		reg(6, "Filipe", false, &empty, nil, nil),            // blank answer, excluded
	}

	tally := MealTally(regs, SelectFish)
	assert.Equal(t, map[string]int{"Bacalhau": 2, "Robalo": 1}, tally)

	// Counts sum to the active registrations that supplied a value.
	total := 0
	for _, n := range tally {
		total += n
	}
	assert.Equal(t, 3, total)
}

func TestMealTally_MenuField(t *testing.T) {
	regs := []*Registration{
		reg(1, "Ana", false, nil, nil, nil),
		reg(2, "Bruno", false, nil, nil, nil),
	}
	regs[1].Menu = "Menu Criança"

	tally := MealTally(regs, SelectMenu)
	assert.Equal(t, map[string]int{"Menu Adulto": 1, "Menu Criança": 1}, tally)
}

func TestRegistrationsCSV(t *testing.T) {
	regs := []*Registration{
		reg(1, "Ana", false, strPtr("Bacalhau"), strPtr("Vitela"), strPtr("Profiteroles")),
		reg(2, "Bruno", false, nil, nil, nil),
	}

	csv := RegistrationsCSV(regs)
	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3)

	header := strings.Split(lines[0], ";")
	assert.Equal(t, []string{"Nome", "Email", "Telefone", "Distrito", "Concelho", "Menu", "Peixe", "Carne", "Sobremesa"}, header)

	// Every data row has exactly as many fields as the header.
	for _, line := range lines[1:] {
		assert.Len(t, strings.Split(line, ";"), len(header))
	}

	assert.Equal(t, "Ana;ana@example.com;911111111;Lisboa;Torres Vedras;Menu Adulto;Bacalhau;Vitela;Profiteroles", lines[1])
	// Absent course answers render as empty fields.
	assert.Equal(t, "Bruno;bruno@example.com;911111111;Lisboa;Torres Vedras;Menu Adulto;;;", lines[2])
}

func TestRegistrationsCSV_Empty(t *testing.T) {
	csv := RegistrationsCSV(nil)
	assert.Equal(t, "Nome;Email;Telefone;Distrito;Concelho;Menu;Peixe;Carne;Sobremesa\n", csv)
}
