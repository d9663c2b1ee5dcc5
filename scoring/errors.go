package scoring

import "errors"

// Both are permanent for a given input: the submission has to be rejected.
var (
	ErrNoStartCrossing      = errors.New("could not detect start gate crossing")
	ErrNoTrackAfterPrevious = errors.New("no track points after previous checkpoint")
)
