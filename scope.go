// File: lexbool/scope.go
package lexbool

import "sync"

// slot is a write-once cell holding one token list. The explicit setter and
// the lazy-default path race through the same sync.Once, so exactly one
// writer wins regardless of ordering.
type slot struct {
	once   sync.Once
	tokens []string
}

// set attempts to fix the slot to tokens. It reports whether this call won.
func (s *slot) set(tokens []string) bool {
	won := false
	s.once.Do(func() {
		s.tokens = tokens
		won = true
	})
	return won
}

// resolve returns the slot's tokens, fixing it to a copy of defaults if no
// writer has won yet.
func (s *slot) resolve(defaults []string) []string {
	s.once.Do(func() {
		s.tokens = append([]string(nil), defaults...)
	})
	return s.tokens
}

// Scope owns one truthy and one falsey token slot. It is the unit of
// configuration isolation: distinct Scopes never share state, so no
// synchronization is needed between them, while each slot resolves
// concurrent initialization attempts to exactly one winner.
//
// The zero value is ready to use.
type Scope struct {
	truthy slot
	falsey slot
}

// NewScope returns a Scope with both slots unset.
func NewScope() *Scope {
	return &Scope{}
}

// SetTruthyValues attempts to fix the truthy token set for this Scope.
// It reports whether the values were applied: false means the slot was
// already set (by an earlier call or by the lazy default on first parse)
// and the provided values were discarded. It never fails otherwise.
//
// Values are stored verbatim and compared by exact equality against the
// lower-cased input, so values containing upper-case letters never match.
func (s *Scope) SetTruthyValues(values ...string) bool {
	return s.truthy.set(append([]string(nil), values...))
}

// SetFalseyValues is the falsey counterpart of SetTruthyValues. The two
// slots are independent: setting one leaves the other unset.
func (s *Scope) SetFalseyValues(values ...string) bool {
	return s.falsey.set(append([]string(nil), values...))
}

// TruthyValues returns a copy of the truthy token set, fixing the slot to
// the defaults if it was still unset.
func (s *Scope) TruthyValues() []string {
	return append([]string(nil), s.truthy.resolve(TruthyDefaults)...)
}

// FalseyValues returns a copy of the falsey token set, fixing the slot to
// the defaults if it was still unset.
func (s *Scope) FalseyValues() []string {
	return append([]string(nil), s.falsey.resolve(FalseyDefaults)...)
}

// Parse classifies input against the Scope's token sets. The input is
// lower-cased with ASCII folding, then tested against the truthy set and
// the falsey set in that order; each slot is fixed to its defaults on first
// use if it was never configured. An input matching neither set yields a
// *ParseError carrying the original, unfolded input.
func (s *Scope) Parse(input string) (Bool, error) {
	folded := asciiLower(input)

	for _, tok := range s.truthy.resolve(TruthyDefaults) {
		if tok == folded {
			return true, nil
		}
	}

	for _, tok := range s.falsey.resolve(FalseyDefaults) {
		if tok == folded {
			return false, nil
		}
	}

	return false, &ParseError{Input: input}
}
