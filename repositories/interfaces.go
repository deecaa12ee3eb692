package repositories

import "socialsim/models"

type UserRepository interface {
	FindByUsername(username string) (*models.User, error)
	Create(username string) (*models.User, error)
	Exists(username string) bool
	Follow(follower, followee *models.User) error
	Unfollow(follower, followee *models.User) error
	All() []*models.User
}

type PostRepository interface {
	Create(author *models.User, text string) *models.Post
	FindByID(id int) (*models.Post, error)
	All() []*models.Post
	Count() int
	Feed(user *models.User) []*models.Post
}
