package validators

import "errors"

var (
	ErrReviewEmpty     = errors.New("no review text provided")
	ErrStarsOutOfRange = errors.New("stars must be between 1 and 5")
)

func ReviewValidator(text string, stars int) error {
	if text == "" {
		return ErrReviewEmpty
	}

	if stars < 1 || stars > 5 {
		return ErrStarsOutOfRange
	}

	return nil
}
