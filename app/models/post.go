package models

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrDuplicateID is returned when two posts in a dataset share an ID.
var ErrDuplicateID = errors.New("duplicate post id")

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if p == nil {
		return errors.New("post cannot be nil")
	}
	return validate.Struct(p)
}

// Preview returns the first n runes of the content, followed by an ellipsis
// when anything was cut off. n <= 0 disables truncation.
func (p *Post) Preview(n int) string {
	if n <= 0 || utf8.RuneCountInString(p.Content) <= n {
		return p.Content
	}
	runes := []rune(p.Content)
	return string(runes[:n]) + "…"
}

// ValidateDataset validates every post and checks that IDs are unique.
func ValidateDataset(posts []*Post) error {
	seen := make(map[int]struct{}, len(posts))
	for i, post := range posts {
		if err := post.Validate(); err != nil {
			return fmt.Errorf("post at position %d: %w", i, err)
		}
		if _, ok := seen[post.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, post.ID)
		}
		seen[post.ID] = struct{}{}
	}
	return nil
}
