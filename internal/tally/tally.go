// Package tally derives a nomination's status from its current votes.
//
// The result depends only on the multiset of vote values, so it is
// recomputed from scratch after every change rather than tracked as a
// state machine: removing or flipping the deciding vote can move a
// property back from approved or rejected.
package tally

import "group-decision/internal/model"

type Counts struct {
	Yes   int `json:"yes"`
	No    int `json:"no"`
	Maybe int `json:"maybe"`
}

func (c Counts) Total() int { return c.Yes + c.No + c.Maybe }

// Count tallies values. Unknown values are ignored.
func Count(values []model.VoteValue) Counts {
	var c Counts
	for _, v := range values {
		switch v {
		case model.VoteYes:
			c.Yes++
		case model.VoteNo:
			c.No++
		case model.VoteMaybe:
			c.Maybe++
		}
	}
	return c
}

// Status applies the majority rule:
//
//	no votes                    -> voting
//	yes > no  && yes >= maybe   -> approved
//	no  > yes && no  >= maybe   -> rejected
//	anything else               -> maybe
func (c Counts) Status() model.PropertyStatus {
	switch {
	case c.Total() == 0:
		return model.StatusVoting
	case c.Yes > c.No && c.Yes >= c.Maybe:
		return model.StatusApproved
	case c.No > c.Yes && c.No >= c.Maybe:
		return model.StatusRejected
	default:
		return model.StatusMaybe
	}
}

func Recompute(values []model.VoteValue) model.PropertyStatus {
	return Count(values).Status()
}
