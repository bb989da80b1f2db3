package validators

import "errors"

var (
	ErrTitleEmpty   = errors.New("no title provided")
	ErrCreatorEmpty = errors.New("no author or creator provided")
	ErrLinkEmpty    = errors.New("no link provided")
	ErrLinkTooLong  = errors.New("link must be at most 500 characters long")
)

// MediaValidator checks the required fields shared by books and videos.
// creator holds the author for books
func MediaValidator(title, creator, link string) error {
	if title == "" {
		return ErrTitleEmpty
	}

	if creator == "" {
		return ErrCreatorEmpty
	}

	if link == "" {
		return ErrLinkEmpty
	}

	if len(link) > 500 {
		return ErrLinkTooLong
	}

	return nil
}
