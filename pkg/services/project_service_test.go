package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/pkg/models"
)

func TestProjectService_CreateProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.projects.CreateProject(ctx, models.CreateProjectRequest{
		Name: "Checkout Agents",
		Slug: "checkout-agents",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "checkout-agents", p.Slug)

	loaded, err := f.projects.GetProjectBySlug(ctx, "checkout-agents")
	require.NoError(t, err)
	assert.Equal(t, p.ID, loaded.ID)
}

func TestProjectService_CreateProject_DuplicateSlug(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.projects.CreateProject(ctx, models.CreateProjectRequest{Name: "Other", Slug: "fixture"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestProjectService_CreateProject_InvalidSlug(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, slug := range []string{"", "Upper", "has space", "-leading", "tra:iling"} {
		_, err := f.projects.CreateProject(ctx, models.CreateProjectRequest{Name: "X", Slug: slug})
		assert.True(t, IsValidationError(err), "slug %q should be rejected", slug)
	}
}

func TestProjectService_GetProject_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.projects.GetProject(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_EnsureProject_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.projects.EnsureProject(ctx, "Local", "local")
	require.NoError(t, err)
	second, err := f.projects.EnsureProject(ctx, "Local", "local")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := f.projects.ListProjects(ctx)
	require.NoError(t, err)
	// The fixture project plus the one ensured above.
	assert.Len(t, all, 2)
}
