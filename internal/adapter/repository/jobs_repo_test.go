package repository_test

import (
	"context"
	"testing"

	"resume-templates/internal/adapter/repository"
	"resume-templates/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Without a pool the repo degrades to a no-op so rendering keeps working
// when the database is down.
func TestJobsRepoNilPool(t *testing.T) {
	repo := repository.NewJobsRepo(nil)
	ctx := context.Background()

	job := &domain.ExportJob{ID: uuid.New(), UserID: uuid.New()}
	assert.NoError(t, repo.Save(ctx, job))

	jobs, err := repo.ListForUser(ctx, job.UserID.String())
	assert.NoError(t, err)
	assert.Nil(t, jobs)

	got, err := repo.GetByID(ctx, job.ID.String())
	assert.NoError(t, err)
	assert.Nil(t, got)
}
