package dao

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

// TestMain spins up a throwaway Postgres container for the DAO tests.
// Run with -short to skip them.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct docker pool: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=association_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	dsn := fmt.Sprintf("host=localhost port=%s user=test password=secret dbname=association_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	pool.MaxWait = 2 * time.Minute
	if err = pool.Retry(func() error {
		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}
		if pingErr := sqlDB.Ping(); pingErr != nil {
			return pingErr
		}

		testDB = db

		return nil
	}); err != nil {
		log.Fatalf("could not connect to postgres: %v", err)
	}

	if err = InitTables(testDB); err != nil {
		log.Fatalf("could not migrate tables: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres container: %v", err)
	}

	os.Exit(code)
}

func skipIfShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

func TestUserDAO_Insert_DuplicateEmail(t *testing.T) {
	skipIfShort(t)

	userDAO := NewUserDAO(testDB)
	ctx := context.Background()

	_, err := userDAO.Insert(ctx, User{
		Name:     "Alice",
		Email:    "dup@example.com",
		Password: "hash",
		Role:     "user",
	})
	require.NoError(t, err)

	_, err = userDAO.Insert(ctx, User{
		Name:     "Other Alice",
		Email:    "dup@example.com",
		Password: "hash",
		Role:     "user",
	})
	assert.ErrorIs(t, err, ErrUserEmailExists)
}

func TestActivityDAO_RegisterParticipant_Concurrent(t *testing.T) {
	skipIfShort(t)

	activityDAO := NewActivityDAO(testDB)
	ctx := context.Background()

	activity, err := activityDAO.Insert(ctx, Activity{
		Title:       "last seat",
		Description: "capacity race",
		Type:        "workshop",
		Date:        time.Now().Add(24 * time.Hour),
		Location:    "main hall",
		Capacity:    1,
	})
	require.NoError(t, err)

	const attempts = 10

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = activityDAO.RegisterParticipant(ctx, uint(i+1), activity.ID)
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrActivityFull)
		}
	}
	assert.Equal(t, 1, succeeded)

	final, err := activityDAO.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, final.RegisteredCount)
}

func TestActivityDAO_RegisterParticipant_MissingActivity(t *testing.T) {
	skipIfShort(t)

	activityDAO := NewActivityDAO(testDB)
	ctx := context.Background()

	_, err := activityDAO.RegisterParticipant(ctx, 1, 987654)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestActivityDAO_RegisterParticipant_ConcurrentSameUser(t *testing.T) {
	skipIfShort(t)

	activityDAO := NewActivityDAO(testDB)
	ctx := context.Background()

	activity, err := activityDAO.Insert(ctx, Activity{
		Title:       "plenty of seats",
		Description: "same user racing itself",
		Type:        "hackathon",
		Date:        time.Now().Add(24 * time.Hour),
		Location:    "lab",
		Capacity:    10,
	})
	require.NoError(t, err)

	const (
		userID   = 300
		attempts = 8
	)

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = activityDAO.RegisterParticipant(ctx, userID, activity.ID)
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyRegistered)
		}
	}
	assert.Equal(t, 1, succeeded)

	var live int64
	require.NoError(t, testDB.Model(&Participation{}).
		Where("user_id = ? AND activity_id = ? AND status <> ?", userID, activity.ID, "cancelled").
		Count(&live).Error)
	assert.Equal(t, int64(1), live)

	final, err := activityDAO.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, final.RegisteredCount)
}

func TestActivityDAO_CancelThenReRegister(t *testing.T) {
	skipIfShort(t)

	activityDAO := NewActivityDAO(testDB)
	ctx := context.Background()

	activity, err := activityDAO.Insert(ctx, Activity{
		Title:       "one seat",
		Description: "cancel frees the seat",
		Type:        "formation",
		Date:        time.Now().Add(24 * time.Hour),
		Location:    "room 2",
		Capacity:    1,
	})
	require.NoError(t, err)

	const userID = 100

	_, err = activityDAO.RegisterParticipant(ctx, userID, activity.ID)
	require.NoError(t, err)

	_, err = activityDAO.RegisterParticipant(ctx, userID, activity.ID)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	cancelled, err := activityDAO.CancelParticipation(ctx, userID, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	after, err := activityDAO.FindByID(ctx, activity.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.RegisteredCount)

	_, err = activityDAO.RegisterParticipant(ctx, userID, activity.ID)
	assert.NoError(t, err)
}

func TestProjectDAO_RegisterParticipant_Duplicate(t *testing.T) {
	skipIfShort(t)

	projectDAO := NewProjectDAO(testDB)
	ctx := context.Background()

	project, err := projectDAO.Insert(ctx, Project{
		Title:       "solar kits",
		Description: "rural electrification",
		Domain:      "energy",
		Status:      "ongoing",
	})
	require.NoError(t, err)

	_, err = projectDAO.RegisterParticipant(ctx, 200, project.ID)
	require.NoError(t, err)

	_, err = projectDAO.RegisterParticipant(ctx, 200, project.ID)
	assert.ErrorIs(t, err, ErrProjectAlreadyJoined)

	after, err := projectDAO.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Participants)
}

func TestProjectDAO_RegisterParticipant_ConcurrentSameUser(t *testing.T) {
	skipIfShort(t)

	projectDAO := NewProjectDAO(testDB)
	ctx := context.Background()

	project, err := projectDAO.Insert(ctx, Project{
		Title:       "well digging",
		Description: "clean water access",
		Domain:      "water",
		Status:      "ongoing",
	})
	require.NoError(t, err)

	const (
		userID   = 400
		attempts = 8
	)

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = projectDAO.RegisterParticipant(ctx, userID, project.ID)
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrProjectAlreadyJoined)
		}
	}
	assert.Equal(t, 1, succeeded)

	after, err := projectDAO.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Participants)
}

func TestSettingDAO_Upsert(t *testing.T) {
	skipIfShort(t)

	settingDAO := NewSettingDAO(testDB)
	ctx := context.Background()

	first, err := settingDAO.Upsert(ctx, Setting{
		Key:   "bank_name",
		Value: "Banque Populaire",
	})
	require.NoError(t, err)

	second, err := settingDAO.Upsert(ctx, Setting{
		Key:   "bank_name",
		Value: "Attijariwafa Bank",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Attijariwafa Bank", second.Value)

	all, err := settingDAO.FindAll(ctx)
	require.NoError(t, err)

	var matches int
	for _, s := range all {
		if s.Key == "bank_name" {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}
