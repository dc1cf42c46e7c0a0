// Package ownership is the single source of truth for whether a user may act
// on a project or task. A task never stores its owner directly; access is
// re-derived through its parent project on every call.
package ownership

import (
	"fmt"

	"github.com/taskdeck-dev/taskdeck/internal/apperr"
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"github.com/taskdeck-dev/taskdeck/internal/store"
)

type Resolver struct {
	store store.Store
}

func NewResolver(s store.Store) *Resolver {
	return &Resolver{store: s}
}

// ResolveProject returns the project if it exists and is owned by userID.
// A missing project and someone else's project are both reported as not
// found, so callers cannot learn whether a foreign project exists.
func (r *Resolver) ResolveProject(userID, projectID uint) (*models.Project, error) {
	project, err := r.store.FindProjectByID(projectID)

	if err != nil {
		return nil, err
	}

	if project == nil || project.OwnerID != userID {
		return nil, fmt.Errorf("project %w", apperr.ErrNotFound)
	}

	return project, nil
}

// ResolveTask returns the task if its parent project is owned by userID.
// Unlike projects, a task that exists but belongs to someone else's project
// is reported as forbidden rather than not found, so task existence is
// revealed where project existence is not. The asymmetry is intentional.
func (r *Resolver) ResolveTask(userID, taskID uint) (*models.Task, error) {
	task, err := r.store.FindTaskByID(taskID)

	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, fmt.Errorf("task %w", apperr.ErrNotFound)
	}

	project, err := r.store.FindProjectByID(task.ProjectID)

	if err != nil {
		return nil, err
	}

	if project == nil || project.OwnerID != userID {
		return nil, fmt.Errorf("no access to this task: %w", apperr.ErrForbidden)
	}

	return task, nil
}
