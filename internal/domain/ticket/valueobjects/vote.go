package valueobjects

import "fmt"

// VoteKind distinguishes the two vote directions on tickets and comments.
type VoteKind string

const (
	VoteUp   VoteKind = "upvote"
	VoteDown VoteKind = "downvote"
)

func (v VoteKind) String() string {
	return string(v)
}

func (v VoteKind) IsValid() bool {
	return v == VoteUp || v == VoteDown
}

func NewVoteKind(s string) (VoteKind, error) {
	v := VoteKind(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid vote type: %s", s)
	}
	return v, nil
}
