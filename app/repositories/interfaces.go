package repositories

import "blogview/app/models"

// PostRepository defines the interface for read access to the blog dataset.
// List returns posts in dataset order.
type PostRepository interface {
	List() ([]*models.Post, error)
	GetByID(id int) (*models.Post, error)
}
