package converter

import (
	"queue-engine/internal/domain/feedback"
	"queue-engine/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func feedbackFromColumns(rating pgtype.Int2, comment pgtype.Text) *feedback.Feedback {
	if !rating.Valid {
		return nil
	}
	fb, err := feedback.New(int(rating.Int16), pgconv.StringFromPgtype(comment))
	if err != nil {
		return nil
	}
	return &fb
}

func feedbackToColumns(fb *feedback.Feedback) (pgtype.Int2, pgtype.Text) {
	if fb == nil {
		return pgtype.Int2{}, pgtype.Text{}
	}
	rating := fb.Rating().Value()
	return pgconv.RatingToPgtype(&rating), pgconv.StringToPgtype(fb.Comment().String())
}
