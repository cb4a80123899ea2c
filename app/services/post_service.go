package services

import (
	"context"
	"fmt"
	"time"

	"blogview/app/models"
	"blogview/app/repositories"
)

// BlogService loads the dataset once and hands out per-session view states.
type BlogService struct {
	postRepo repositories.PostRepository
	posts    []*models.Post
	sessions *SessionStore
}

// NewBlogService reads the full dataset from postRepo. The dataset is fixed
// for the lifetime of the service.
func NewBlogService(postRepo repositories.PostRepository, sessionCapacity int64, sessionTTL time.Duration) (*BlogService, error) {
	posts, err := postRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	if err := models.ValidateDataset(posts); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	s := &BlogService{
		postRepo: postRepo,
		posts:    posts,
	}
	sessions, err := NewSessionStore(sessionCapacity, sessionTTL, s.NewViewState)
	if err != nil {
		return nil, err
	}
	s.sessions = sessions
	return s, nil
}

// NewViewState returns a view state over the full dataset, in the list state.
func (s *BlogService) NewViewState() *ViewState {
	return NewViewState(s.posts)
}

// Session returns the view state for a session id.
func (s *BlogService) Session(ctx context.Context, id string) (*ViewState, error) {
	return s.sessions.Get(ctx, id)
}

// Posts returns the full dataset.
func (s *BlogService) Posts() []*models.Post {
	posts := make([]*models.Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

// GetPost retrieves a post by ID
func (s *BlogService) GetPost(id int) (*models.Post, error) {
	return s.postRepo.GetByID(id)
}

// Search filters the full dataset without touching any session.
func (s *BlogService) Search(term string) []*models.Post {
	return FilterPosts(s.posts, term)
}

// Close releases the session store.
func (s *BlogService) Close() {
	s.sessions.Close()
}
