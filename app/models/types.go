package models

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Post represents a blog entry shown on the homepage.
type Post struct {
	ID      int    `json:"id" validate:"required,gte=1"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}
