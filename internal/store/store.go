// Package store is the persistence boundary for users, projects and tasks.
// Lookups return (nil, nil) when the record is absent; errors are reserved
// for actual store failures, except unique-key violations which surface as
// apperr.ErrConflict.
package store

import (
	"github.com/taskdeck-dev/taskdeck/internal/models"
)

type Store interface {
	CreateUser(user *models.User) error
	FindUserByID(id uint) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)

	CreateProject(project *models.Project) error
	FindProjectByID(id uint) (*models.Project, error)
	FindProjectsByOwner(ownerID uint) ([]models.Project, error)
	SaveProject(project *models.Project) error
	DeleteProject(id uint) error

	CreateTask(task *models.Task) error
	FindTaskByID(id uint) (*models.Task, error)
	FindTasksByProject(projectID uint) ([]models.Task, error)
	SaveTask(task *models.Task) error
	DeleteTask(id uint) error
	DeleteTasksByProject(projectID uint) error

	// Transaction runs fn against a store whose operations all commit or
	// all roll back together.
	Transaction(fn func(Store) error) error
}
