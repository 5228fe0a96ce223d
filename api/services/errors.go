package services

import "errors"

// Soft not-found outcomes the handlers map to 404 responses.
// ErrNoMatches and ErrNoParsableMatches are deliberately distinct so a client
// can tell "you have no history" apart from "something is wrong upstream".
var (
	ErrSummonerNotFound  = errors.New("summoner not found")
	ErrNoMatches         = errors.New("no matches found")
	ErrNoParsableMatches = errors.New("could not parse any match details")
	ErrNoRankedInfo      = errors.New("ranked info not found")
	ErrNoMasteryInfo     = errors.New("mastery info not found")
)
