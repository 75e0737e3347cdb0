// Package wager decides whether a bet selection wins against a declared
// result. Evaluation is pure and fails closed: malformed input is never a
// winner and never panics.
package wager

import (
	"strings"

	"github.com/matkaworks/matka-backend/internal/domain"
)

// IsWinner reports whether the selection wins against the declared result
// string. Dispatches on the selection's bet type; unknown types lose (the
// settlement engine flags them for investigation).
func IsWinner(sel domain.Selection, declared string) bool {
	if declared == "" || sel.Number == "" {
		return false
	}

	switch sel.Type {
	case domain.GameTypeJodi:
		return jodiWins(sel.Number, declared)
	case domain.GameTypeHaruf:
		return harufWins(sel, declared)
	case domain.GameTypeCrossing:
		return crossingWins(sel.Number, declared)
	}
	return false
}

// jodiWins requires an exact match of the wagered number with the declared
// result.
func jodiWins(number, declared string) bool {
	return number == declared
}

// harufWins checks the bet digit against the declared result's first or last
// character, per the selection's position tag. Legacy bets carry no position;
// for those the looser historical rule applies: the digit wins if it appears
// anywhere in the result.
func harufWins(sel domain.Selection, declared string) bool {
	if len(sel.Number) != 1 {
		return false
	}

	switch sel.Position {
	case domain.HarufFirst:
		return declared[:1] == sel.Number
	case domain.HarufLast:
		return declared[len(declared)-1:] == sel.Number
	case "":
		return strings.Contains(declared, sel.Number)
	}
	return false
}

// crossingWins checks membership of the wagered 2-digit number in the set of
// ordered digit pairs generated from the declared result. The pairwise
// generation is canonical: it is order sensitive, so "11" only wins when the
// declared result contains the digit 1 at two distinct positions.
func crossingWins(number, declared string) bool {
	if len(number) != 2 || len(declared) < 2 {
		return false
	}
	for _, combo := range CrossingCombinations(declared) {
		if combo == number {
			return true
		}
	}
	return false
}

// CrossingCombinations enumerates every ordered pair of distinct character
// positions (i, j), i != j, in the declared result and concatenates
// declared[i]+declared[j]. Duplicates are preserved in positional order;
// callers needing set semantics can dedupe.
func CrossingCombinations(declared string) []string {
	n := len(declared)
	if n < 2 {
		return nil
	}
	combos := make([]string, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			combos = append(combos, string(declared[i])+string(declared[j]))
		}
	}
	return combos
}

// ValidResultFormat reports whether a declared result string is acceptable
// for the given game type. Results are digit strings: jodi and haruf declare
// an exact 2-digit outcome; crossing declares the digit pool the pairs are
// drawn from (2 to 5 digits).
func ValidResultFormat(t domain.GameType, declared string) bool {
	if !allDigits(declared) {
		return false
	}
	switch t {
	case domain.GameTypeJodi, domain.GameTypeHaruf:
		return len(declared) == 2
	case domain.GameTypeCrossing:
		return len(declared) >= 2 && len(declared) <= 5
	}
	return false
}

// ValidBetNumber reports whether a wagered number is well formed for the
// given selection: exact 2 digits for jodi and crossing, a single digit for
// haruf.
func ValidBetNumber(sel domain.Selection) bool {
	if !allDigits(sel.Number) {
		return false
	}
	switch sel.Type {
	case domain.GameTypeJodi, domain.GameTypeCrossing:
		return len(sel.Number) == 2
	case domain.GameTypeHaruf:
		if len(sel.Number) != 1 {
			return false
		}
		return sel.Position == domain.HarufFirst || sel.Position == domain.HarufLast
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
