package wager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matkaworks/matka-backend/internal/domain"
)

func jodi(number string) domain.Selection {
	return domain.Selection{Type: domain.GameTypeJodi, Number: number}
}

func haruf(number string, pos domain.HarufPosition) domain.Selection {
	return domain.Selection{Type: domain.GameTypeHaruf, Number: number, Position: pos}
}

func crossing(number string) domain.Selection {
	return domain.Selection{Type: domain.GameTypeCrossing, Number: number}
}

func TestIsWinner_Jodi(t *testing.T) {
	tests := []struct {
		name     string
		sel      domain.Selection
		declared string
		want     bool
	}{
		{"exact match", jodi("62"), "62", true},
		{"mismatch", jodi("63"), "62", false},
		{"digit count must match", jodi("6"), "62", false},
		{"no partial match", jodi("62"), "620", false},
		{"empty declared", jodi("62"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWinner(tt.sel, tt.declared))
		})
	}
}

func TestIsWinner_Haruf(t *testing.T) {
	tests := []struct {
		name     string
		sel      domain.Selection
		declared string
		want     bool
	}{
		{"first digit match", haruf("1", domain.HarufFirst), "14", true},
		{"first digit miss", haruf("4", domain.HarufFirst), "14", false},
		{"last digit match", haruf("4", domain.HarufLast), "14", true},
		{"last digit miss", haruf("1", domain.HarufLast), "14", false},
		{"legacy contains fallback hits", haruf("4", ""), "14", true},
		{"legacy contains fallback misses", haruf("7", ""), "14", false},
		{"multi digit number loses", haruf("14", domain.HarufFirst), "14", false},
		{"empty declared", haruf("1", domain.HarufFirst), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWinner(tt.sel, tt.declared))
		})
	}
}

func TestIsWinner_Crossing(t *testing.T) {
	tests := []struct {
		name     string
		sel      domain.Selection
		declared string
		want     bool
	}{
		{"forward pair", crossing("12"), "123", true},
		{"reverse pair", crossing("21"), "123", true},
		{"pair spanning ends", crossing("31"), "123", true},
		{"same digit needs two positions", crossing("11"), "123", false},
		{"repeated digit in result", crossing("11"), "112", true},
		{"absent digit", crossing("45"), "123", false},
		{"two digit declared", crossing("62"), "62", true},
		{"reversed two digit declared", crossing("26"), "62", true},
		{"single digit declared", crossing("12"), "1", false},
		{"wrong bet length", crossing("123"), "123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWinner(tt.sel, tt.declared))
		})
	}
}

func TestIsWinner_UnknownTypeLoses(t *testing.T) {
	sel := domain.Selection{Type: "roulette", Number: "12"}
	assert.False(t, IsWinner(sel, "12"))
}

func TestCrossingCombinations(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"12", "13", "21", "23", "31", "32"},
		CrossingCombinations("123"))

	// Distinct positions, not distinct digits.
	assert.ElementsMatch(t,
		[]string{"11", "12", "11", "12", "21", "21"},
		CrossingCombinations("112"))

	assert.Nil(t, CrossingCombinations("7"))
	assert.Nil(t, CrossingCombinations(""))
}

func TestValidResultFormat(t *testing.T) {
	assert.True(t, ValidResultFormat(domain.GameTypeJodi, "62"))
	assert.False(t, ValidResultFormat(domain.GameTypeJodi, "6"))
	assert.False(t, ValidResultFormat(domain.GameTypeJodi, "623"))
	assert.True(t, ValidResultFormat(domain.GameTypeHaruf, "14"))
	assert.True(t, ValidResultFormat(domain.GameTypeCrossing, "123"))
	assert.True(t, ValidResultFormat(domain.GameTypeCrossing, "12"))
	assert.False(t, ValidResultFormat(domain.GameTypeCrossing, "123456"))
	assert.False(t, ValidResultFormat(domain.GameTypeJodi, "6a"))
	assert.False(t, ValidResultFormat(domain.GameTypeJodi, ""))
	assert.False(t, ValidResultFormat("roulette", "62"))
}

func TestValidBetNumber(t *testing.T) {
	assert.True(t, ValidBetNumber(jodi("62")))
	assert.False(t, ValidBetNumber(jodi("6")))
	assert.True(t, ValidBetNumber(haruf("4", domain.HarufLast)))
	assert.False(t, ValidBetNumber(haruf("4", "")), "new haruf bets require a position")
	assert.False(t, ValidBetNumber(haruf("44", domain.HarufLast)))
	assert.True(t, ValidBetNumber(crossing("12")))
	assert.False(t, ValidBetNumber(crossing("1")))
	assert.False(t, ValidBetNumber(domain.Selection{Type: "roulette", Number: "12"}))
}
