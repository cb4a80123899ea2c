package repositories

import (
	"fmt"

	"blogview/app/models"
)

// MemoryPostRepository serves a fixed dataset held in memory.
type MemoryPostRepository struct {
	posts []*models.Post
	byID  map[int]*models.Post
}

// NewMemoryPostRepository validates posts and wraps them in a repository.
// The slice is copied; the posts themselves are shared.
func NewMemoryPostRepository(posts []*models.Post) (*MemoryPostRepository, error) {
	if err := models.ValidateDataset(posts); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	r := &MemoryPostRepository{
		posts: make([]*models.Post, len(posts)),
		byID:  make(map[int]*models.Post, len(posts)),
	}
	copy(r.posts, posts)
	for _, post := range posts {
		r.byID[post.ID] = post
	}
	return r, nil
}

// List returns the dataset in its original order
func (r *MemoryPostRepository) List() ([]*models.Post, error) {
	posts := make([]*models.Post, len(r.posts))
	copy(posts, r.posts)
	return posts, nil
}

// GetByID retrieves a post by ID
func (r *MemoryPostRepository) GetByID(id int) (*models.Post, error) {
	post, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return post, nil
}
