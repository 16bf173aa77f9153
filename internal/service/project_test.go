package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository"
)

type fakeProjectRepo struct {
	projects       map[uint]domain.Project
	participations map[[2]uint]bool
	nextID         uint
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects:       make(map[uint]domain.Project),
		participations: make(map[[2]uint]bool),
		nextID:         1,
	}
}

func (f *fakeProjectRepo) addProject(status domain.ProjectStatus) uint {
	id := f.nextID
	f.nextID++
	f.projects[id] = domain.Project{
		ID:     id,
		Title:  "project",
		Status: status,
	}

	return id
}

func (f *fakeProjectRepo) Create(_ context.Context, project domain.Project) (domain.Project, error) {
	project.ID = f.nextID
	f.nextID++
	f.projects[project.ID] = project

	return project, nil
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id uint) (domain.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return domain.Project{}, repository.ErrProjectNotFound
	}

	return project, nil
}

func (f *fakeProjectRepo) FindAll(_ context.Context) ([]domain.Project, error) {
	all := make([]domain.Project, 0, len(f.projects))
	for _, p := range f.projects {
		all = append(all, p)
	}

	return all, nil
}

func (f *fakeProjectRepo) FindByStatus(_ context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	var found []domain.Project
	for _, p := range f.projects {
		if p.Status == status {
			found = append(found, p)
		}
	}

	return found, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, project domain.Project) (domain.Project, error) {
	existing, ok := f.projects[project.ID]
	if !ok {
		return domain.Project{}, repository.ErrProjectNotFound
	}

	project.Participants = existing.Participants
	f.projects[project.ID] = project

	return project, nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.projects[id]; !ok {
		return repository.ErrProjectNotFound
	}
	delete(f.projects, id)

	return nil
}

func (f *fakeProjectRepo) RegisterParticipant(_ context.Context, userID, projectID uint) (domain.ProjectParticipation, error) {
	project, ok := f.projects[projectID]
	if !ok {
		return domain.ProjectParticipation{}, repository.ErrProjectNotFound
	}

	key := [2]uint{userID, projectID}
	if f.participations[key] {
		return domain.ProjectParticipation{}, repository.ErrProjectAlreadyJoined
	}

	f.participations[key] = true
	project.Participants++
	f.projects[projectID] = project

	return domain.ProjectParticipation{
		ID:        uint(len(f.participations)),
		UserID:    userID,
		ProjectID: projectID,
	}, nil
}

func TestProjectService_Register(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)
	projectID := repo.addProject(domain.ProjectOngoing)

	_, err := svc.Register(context.Background(), 1, projectID)
	require.NoError(t, err)

	project, err := svc.GetProject(context.Background(), projectID)
	require.NoError(t, err)
	assert.Equal(t, 1, project.Participants)
}

func TestProjectService_Register_Duplicate(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)
	projectID := repo.addProject(domain.ProjectOngoing)

	_, err := svc.Register(context.Background(), 1, projectID)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 1, projectID)
	assert.ErrorIs(t, err, ErrProjectAlreadyJoined)

	project, err := svc.GetProject(context.Background(), projectID)
	require.NoError(t, err)
	assert.Equal(t, 1, project.Participants)
}

func TestProjectService_Register_Completed(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)
	projectID := repo.addProject(domain.ProjectCompleted)

	_, err := svc.Register(context.Background(), 1, projectID)
	assert.ErrorIs(t, err, ErrProjectCompleted)
}

func TestProjectService_Register_Upcoming(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)
	projectID := repo.addProject(domain.ProjectUpcoming)

	_, err := svc.Register(context.Background(), 1, projectID)
	assert.ErrorIs(t, err, ErrProjectNotOpen)
}

func TestProjectService_Register_NotFound(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	_, err := svc.Register(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectService_UpdateProject_StatusForwardOnly(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)
	projectID := repo.addProject(domain.ProjectUpcoming)

	updated, err := svc.UpdateProject(context.Background(), domain.Project{
		ID:     projectID,
		Title:  "project",
		Status: domain.ProjectOngoing,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectOngoing, updated.Status)

	// Moving back in the lifecycle is rejected.
	_, err = svc.UpdateProject(context.Background(), domain.Project{
		ID:     projectID,
		Title:  "project",
		Status: domain.ProjectUpcoming,
	})
	assert.ErrorIs(t, err, ErrInvalidStatusChange)
}

func TestProjectService_UpdateProject_KeepsStatusWhenOmitted(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)
	projectID := repo.addProject(domain.ProjectOngoing)

	updated, err := svc.UpdateProject(context.Background(), domain.Project{
		ID:    projectID,
		Title: "renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectOngoing, updated.Status)
	assert.Equal(t, "renamed", updated.Title)
}

func TestProjectService_CreateProject_DefaultsToUpcoming(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	project, err := svc.CreateProject(context.Background(), domain.Project{Title: "new"})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectUpcoming, project.Status)
}
