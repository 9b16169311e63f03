package feedback

import (
	"errors"
	"strings"
)

const MaxCommentLength = 1000

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong  = errors.New("feedback exceeds maximum length")
	ErrNotRateable     = errors.New("only completed visits can be rated")
	ErrAlreadyReviewed = errors.New("feedback already submitted")
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

// Comment is optional, so an empty comment is valid.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// Feedback is a post-visit rating attached to a ticket or appointment.
type Feedback struct {
	rating  Rating
	comment Comment
}

func New(rating int, comment string) (Feedback, error) {
	r, err := NewRating(rating)
	if err != nil {
		return Feedback{}, err
	}
	c, err := NewComment(comment)
	if err != nil {
		return Feedback{}, err
	}
	return Feedback{rating: r, comment: c}, nil
}

func (f Feedback) Rating() Rating   { return f.rating }
func (f Feedback) Comment() Comment { return f.comment }
