package services

import (
	"strings"

	"blogview/app/models"
)

// FilterPosts returns the posts whose title or content contains term,
// ignoring case. Order is preserved and the returned slice shares the
// post values of the input. An empty term matches every post.
func FilterPosts(posts []*models.Post, term string) []*models.Post {
	needle := strings.ToLower(term)
	filtered := make([]*models.Post, 0, len(posts))
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), needle) ||
			strings.Contains(strings.ToLower(post.Content), needle) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}
