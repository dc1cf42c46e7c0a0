package services

import (
	"fmt"
	"strings"

	"github.com/taskdeck-dev/taskdeck/internal/apperr"
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"github.com/taskdeck-dev/taskdeck/internal/ownership"
	"github.com/taskdeck-dev/taskdeck/internal/store"
)

// TaskPatch is a partial task update. Nil fields were absent from the
// request; a patch with both fields nil means "toggle completed".
type TaskPatch struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Completed == nil
}

type TaskService struct {
	store  store.Store
	owners *ownership.Resolver
}

func NewTaskService(s store.Store, r *ownership.Resolver) *TaskService {
	return &TaskService{store: s, owners: r}
}

// List returns all tasks of the given project, newest first. The project
// must exist and be owned by userID.
func (s *TaskService) List(userID, projectID uint) ([]models.Task, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("%w: projectId is required", apperr.ErrInvalidInput)
	}

	project, err := s.owners.ResolveProject(userID, projectID)

	if err != nil {
		return nil, err
	}

	return s.store.FindTasksByProject(project.ID)
}

func (s *TaskService) Create(userID, projectID uint, title string) (*models.Task, error) {
	title = strings.TrimSpace(title)

	if projectID == 0 || title == "" {
		return nil, fmt.Errorf("%w: projectId and title are required", apperr.ErrInvalidInput)
	}

	project, err := s.owners.ResolveProject(userID, projectID)

	if err != nil {
		return nil, err
	}

	task := models.Task{
		Title:     title,
		Completed: false,
		ProjectID: project.ID,
	}

	if err := s.store.CreateTask(&task); err != nil {
		return nil, err
	}

	return &task, nil
}

// Update applies patch to the task. An empty patch flips completed; a
// non-empty patch changes only the fields present and leaves the rest
// untouched.
func (s *TaskService) Update(userID, taskID uint, patch TaskPatch) (*models.Task, error) {
	task, err := s.owners.ResolveTask(userID, taskID)

	if err != nil {
		return nil, err
	}

	if patch.Empty() {
		task.Completed = !task.Completed

		if err := s.store.SaveTask(task); err != nil {
			return nil, err
		}

		return task, nil
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)

		if title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", apperr.ErrInvalidInput)
		}

		task.Title = title
	}

	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	if err := s.store.SaveTask(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(userID, taskID uint) error {
	task, err := s.owners.ResolveTask(userID, taskID)

	if err != nil {
		return err
	}

	return s.store.DeleteTask(task.ID)
}
