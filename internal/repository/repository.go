package repository

import "github.com/adiprasetyo/task-tracker-api/internal/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email address
	FindByEmail(email string) (*models.User, error)

	// List returns all users
	List() ([]models.User, error)

	// Update saves all fields of an existing user
	Update(user *models.User) error

	// Delete removes a user
	Delete(id uint64) error

	// EmailTaken reports whether email is used by a user other than excludeID
	EmailTaken(email string, excludeID uint64) (bool, error)

	// Exists reports whether a user row with the given ID exists
	Exists(id uint64) (bool, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id uint64) (*models.Project, error)
	List() ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uint64) error
	Exists(id uint64) (bool, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id uint64) (*models.Task, error)
	List() ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id uint64) error
}

// TokenRepository defines the interface for personal access token data access
type TokenRepository interface {
	// Create inserts a new token row
	Create(token *models.PersonalToken) error

	// FindByHash finds a live token by its SHA-256 digest
	FindByHash(hash string) (*models.PersonalToken, error)

	// DeleteByUser revokes every token owned by the user
	DeleteByUser(userID uint64) error
}
