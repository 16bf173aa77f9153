package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository"
)

// fakeActivityRepo mirrors the transactional registration semantics of
// the real repository: dedup check, atomic seat claim, then insert.
type fakeActivityRepo struct {
	mu             sync.Mutex
	activities     map[uint]domain.Activity
	participations []domain.Participation
	nextID         uint
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{
		activities: make(map[uint]domain.Activity),
		nextID:     1,
	}
}

func (f *fakeActivityRepo) addActivity(capacity int) uint {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.activities[id] = domain.Activity{
		ID:       id,
		Title:    "workshop",
		Type:     domain.ActivityWorkshop,
		Date:     time.Now().Add(24 * time.Hour),
		Capacity: capacity,
	}

	return id
}

func (f *fakeActivityRepo) Create(_ context.Context, activity domain.Activity) (domain.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	activity.ID = f.nextID
	f.nextID++
	f.activities[activity.ID] = activity

	return activity, nil
}

func (f *fakeActivityRepo) FindByID(_ context.Context, id uint) (domain.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	activity, ok := f.activities[id]
	if !ok {
		return domain.Activity{}, repository.ErrActivityNotFound
	}

	return activity, nil
}

func (f *fakeActivityRepo) FindAll(_ context.Context) ([]domain.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]domain.Activity, 0, len(f.activities))
	for _, a := range f.activities {
		all = append(all, a)
	}

	return all, nil
}

func (f *fakeActivityRepo) FindUpcoming(ctx context.Context) ([]domain.Activity, error) {
	return f.FindAll(ctx)
}

func (f *fakeActivityRepo) Update(_ context.Context, activity domain.Activity) (domain.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.activities[activity.ID]
	if !ok {
		return domain.Activity{}, repository.ErrActivityNotFound
	}

	activity.Capacity = existing.Capacity
	activity.RegisteredCount = existing.RegisteredCount
	f.activities[activity.ID] = activity

	return activity, nil
}

func (f *fakeActivityRepo) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.activities[id]; !ok {
		return repository.ErrActivityNotFound
	}
	delete(f.activities, id)

	return nil
}

func (f *fakeActivityRepo) RegisterParticipant(_ context.Context, userID, activityID uint) (domain.Participation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	activity, ok := f.activities[activityID]
	if !ok {
		return domain.Participation{}, repository.ErrActivityNotFound
	}

	for _, p := range f.participations {
		if p.UserID == userID && p.ActivityID == activityID && p.Status != domain.ParticipationCancelled {
			return domain.Participation{}, repository.ErrAlreadyRegistered
		}
	}

	if activity.RegisteredCount >= activity.Capacity {
		return domain.Participation{}, repository.ErrActivityFull
	}

	activity.RegisteredCount++
	f.activities[activityID] = activity

	participation := domain.Participation{
		ID:         uint(len(f.participations) + 1),
		UserID:     userID,
		ActivityID: activityID,
		Status:     domain.ParticipationRegistered,
	}
	f.participations = append(f.participations, participation)

	return participation, nil
}

func (f *fakeActivityRepo) CancelParticipation(_ context.Context, userID, activityID uint) (domain.Participation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, p := range f.participations {
		if p.UserID == userID && p.ActivityID == activityID && p.Status != domain.ParticipationCancelled {
			f.participations[i].Status = domain.ParticipationCancelled

			activity := f.activities[activityID]
			if activity.RegisteredCount > 0 {
				activity.RegisteredCount--
				f.activities[activityID] = activity
			}

			return f.participations[i], nil
		}
	}

	return domain.Participation{}, repository.ErrParticipationNotFound
}

func (f *fakeActivityRepo) FindParticipationsByUserID(_ context.Context, userID uint) ([]domain.Participation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var found []domain.Participation
	for _, p := range f.participations {
		if p.UserID == userID {
			found = append(found, p)
		}
	}

	return found, nil
}

func TestActivityService_Register(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := NewActivityService(repo)
	activityID := repo.addActivity(2)

	first, err := svc.Register(context.Background(), 1, activityID)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationRegistered, first.Status)

	_, err = svc.Register(context.Background(), 2, activityID)
	require.NoError(t, err)

	// Capacity is 2, the third registration must be refused and the
	// counter must stay put.
	_, err = svc.Register(context.Background(), 3, activityID)
	assert.ErrorIs(t, err, ErrActivityFull)

	activity, err := svc.GetActivity(context.Background(), activityID)
	require.NoError(t, err)
	assert.Equal(t, 2, activity.RegisteredCount)
}

func TestActivityService_Register_Duplicate(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := NewActivityService(repo)
	activityID := repo.addActivity(5)

	_, err := svc.Register(context.Background(), 1, activityID)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 1, activityID)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestActivityService_Register_NotFound(t *testing.T) {
	svc := NewActivityService(newFakeActivityRepo())

	_, err := svc.Register(context.Background(), 1, 999)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestActivityService_CancelFreesSeat(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := NewActivityService(repo)
	activityID := repo.addActivity(1)

	_, err := svc.Register(context.Background(), 1, activityID)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), 2, activityID)
	require.ErrorIs(t, err, ErrActivityFull)

	cancelled, err := svc.CancelRegistration(context.Background(), 1, activityID)
	require.NoError(t, err)
	assert.Equal(t, domain.ParticipationCancelled, cancelled.Status)

	// The freed seat can be claimed, including by the user who left.
	_, err = svc.Register(context.Background(), 1, activityID)
	assert.NoError(t, err)
}

func TestActivityService_Cancel_NotRegistered(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := NewActivityService(repo)
	activityID := repo.addActivity(1)

	_, err := svc.CancelRegistration(context.Background(), 1, activityID)
	assert.ErrorIs(t, err, ErrParticipationNotFound)
}

func TestActivityService_Register_Concurrent(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := NewActivityService(repo)
	activityID := repo.addActivity(1)

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(context.Background(), uint(i+1), activityID)
		}(i)
	}
	wg.Wait()

	var succeeded, full int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrActivityFull):
			full++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, full)

	activity, err := svc.GetActivity(context.Background(), activityID)
	require.NoError(t, err)
	assert.Equal(t, 1, activity.RegisteredCount)
}

func TestActivityService_GetUserParticipations(t *testing.T) {
	repo := newFakeActivityRepo()
	svc := NewActivityService(repo)
	first := repo.addActivity(5)
	second := repo.addActivity(5)

	_, err := svc.Register(context.Background(), 1, first)
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), 1, second)
	require.NoError(t, err)

	participations, err := svc.GetUserParticipations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, participations, 2)
	assert.Equal(t, first, participations[0].Activity.ID)
	assert.Equal(t, second, participations[1].Activity.ID)
}
