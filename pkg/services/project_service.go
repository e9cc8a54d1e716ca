package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/neonhq/neon/ent"
	"github.com/neonhq/neon/ent/project"
	"github.com/neonhq/neon/pkg/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ProjectService manages the tenant boundary.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a project with a unique slug.
func (s *ProjectService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if !slugPattern.MatchString(req.Slug) {
		return nil, NewValidationError("slug", "must be lowercase alphanumeric with hyphens")
	}

	p, err := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetSlug(req.Slug).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// GetProject retrieves a project by id.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.IDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// GetProjectBySlug retrieves a project by slug.
func (s *ProjectService) GetProjectBySlug(ctx context.Context, slug string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.SlugEQ(slug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by slug: %w", err)
	}
	return p, nil
}

// ListProjects lists all projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// EnsureProject returns the project with the given slug, creating it if
// missing. Used by the CLI's embedded store where projects are implicit.
func (s *ProjectService) EnsureProject(ctx context.Context, name, slug string) (*ent.Project, error) {
	p, err := s.GetProjectBySlug(ctx, slug)
	if err == nil {
		return p, nil
	}
	if err != ErrNotFound {
		return nil, err
	}
	p, err = s.CreateProject(ctx, models.CreateProjectRequest{Name: name, Slug: slug})
	if err == ErrAlreadyExists {
		// Lost a creation race; re-read.
		return s.GetProjectBySlug(ctx, slug)
	}
	return p, err
}
