package domain

import (
	"errors"
)

var (
	MessageSuccessSubmitVotes  = "votes submitted successfully"
	MessageSuccessGetUserVotes = "votes retrieved successfully"
	MessageSuccessGetTally     = "vote tally retrieved successfully"

	MessageFailedSubmitVotes  = "failed to submit votes"
	MessageFailedGetUserVotes = "failed to retrieve votes"
	MessageFailedGetTally     = "failed to retrieve vote tally"

	ErrNoPickSelected   = errors.New("please select at least one restaurant")
	ErrNoVotingSession  = errors.New("no active voting session")
	ErrDuplicatePick    = errors.New("the same restaurant cannot hold more than one rank")
	ErrUnknownPickValue = errors.New("unknown pick value")
)

type (
	SubmitVotesRequest struct {
		FirstPick  string `json:"first_pick" validate:"omitempty,uuid"`
		SecondPick string `json:"second_pick" validate:"omitempty,uuid"`
		ThirdPick  string `json:"third_pick" validate:"omitempty,uuid"`
	}

	UserVotesResponse struct {
		FirstPick  string `json:"first_pick,omitempty"`
		SecondPick string `json:"second_pick,omitempty"`
		ThirdPick  string `json:"third_pick,omitempty"`
		// Editable is true when the user has not voted in the current session yet.
		Editable bool `json:"editable"`
	}

	VoteTallyEntry struct {
		RestaurantID   string `json:"restaurant_id"`
		RestaurantName string `json:"restaurant_name"`
		Votes          int    `json:"votes"`
		// WeightedSum is recomputed from user_votes rows; it should always
		// equal Votes when the ledger is consistent.
		WeightedSum int `json:"weighted_sum"`
	}
)
