// Package services implements the user-scoped project and task operations.
// Every method takes the acting user's ID explicitly; there is no ambient
// "current user" state. Input validation happens before any store write.
package services

import (
	"fmt"
	"strings"

	"github.com/taskdeck-dev/taskdeck/internal/apperr"
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"github.com/taskdeck-dev/taskdeck/internal/ownership"
	"github.com/taskdeck-dev/taskdeck/internal/store"
)

type ProjectService struct {
	store  store.Store
	owners *ownership.Resolver
}

func NewProjectService(s store.Store, r *ownership.Resolver) *ProjectService {
	return &ProjectService{store: s, owners: r}
}

// List returns all projects owned by userID, newest first.
func (s *ProjectService) List(userID uint) ([]models.Project, error) {
	return s.store.FindProjectsByOwner(userID)
}

func (s *ProjectService) Create(userID uint, name string) (*models.Project, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrInvalidInput)
	}

	project := models.Project{
		Name:    name,
		OwnerID: userID,
	}

	if err := s.store.CreateProject(&project); err != nil {
		return nil, err
	}

	return &project, nil
}

func (s *ProjectService) Rename(userID, projectID uint, name string) (*models.Project, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrInvalidInput)
	}

	project, err := s.owners.ResolveProject(userID, projectID)

	if err != nil {
		return nil, err
	}

	project.Name = name

	if err := s.store.SaveProject(project); err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes the project and all of its tasks as one unit. Tasks go
// first inside the transaction, so a store without transaction support can
// never be left with a project whose tasks survived it.
func (s *ProjectService) Delete(userID, projectID uint) error {
	project, err := s.owners.ResolveProject(userID, projectID)

	if err != nil {
		return err
	}

	return s.store.Transaction(func(tx store.Store) error {
		if err := tx.DeleteTasksByProject(project.ID); err != nil {
			return err
		}
		return tx.DeleteProject(project.ID)
	})
}
