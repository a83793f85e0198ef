package domain

import (
	"slices"
	"time"
)

// Operator is a user allowed to drive the control bot
type Operator struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	AddedAt  time.Time `json:"added_at"`
	IsAdmin  bool      `json:"is_admin"`
}

// Roster is the persisted set of operators, in registration order.
type Roster struct {
	Operators []Operator `json:"operators"`
	// ClaimedAt is when the first admin took the bot over; zero while unclaimed.
	ClaimedAt time.Time `json:"claimed_at,omitempty"`
}

// Find returns the operator with the given ID.
func (r *Roster) Find(userID int64) (Operator, bool) {
	i := slices.IndexFunc(r.Operators, func(op Operator) bool { return op.ID == userID })
	if i < 0 {
		return Operator{}, false
	}
	return r.Operators[i], true
}

// Upsert adds op or replaces the operator with the same ID in place.
func (r *Roster) Upsert(op Operator) {
	if i := slices.IndexFunc(r.Operators, func(o Operator) bool { return o.ID == op.ID }); i >= 0 {
		r.Operators[i] = op
		return
	}
	r.Operators = append(r.Operators, op)
}

// Claimable reports whether the first /start may take the admin seat.
func (r *Roster) Claimable() bool {
	return r.ClaimedAt.IsZero() && len(r.Operators) == 0
}
