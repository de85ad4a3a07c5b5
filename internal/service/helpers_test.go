package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/studytrack/studytrack-api/internal/models"
	"github.com/studytrack/studytrack-api/internal/repository"
	"github.com/studytrack/studytrack-api/internal/repository/memory"
	appErrors "github.com/studytrack/studytrack-api/pkg/errors"
)

// seededStores returns an isolated backend preloaded with the development
// fixtures, anchored to the shared test clock.
func seededStores() repository.Stores {
	db := memory.NewDB()
	db.Seed(clock)
	return db.Stores()
}

type failingCourses struct{ err error }

func (f *failingCourses) List(context.Context) ([]models.Course, error) { return nil, f.err }
func (f *failingCourses) Get(context.Context, int) (*models.Course, error) {
	return nil, f.err
}
func (f *failingCourses) Create(context.Context, *models.Course) (*models.Course, error) {
	return nil, f.err
}
func (f *failingCourses) Update(context.Context, int, models.CoursePatch) (*models.Course, error) {
	return nil, f.err
}
func (f *failingCourses) Delete(context.Context, int) error { return f.err }

type failingGrades struct{ err error }

func (f *failingGrades) List(context.Context) ([]models.Grade, error) { return nil, f.err }
func (f *failingGrades) GetByCourse(context.Context, int) (*models.Grade, error) {
	return nil, f.err
}
func (f *failingGrades) Create(context.Context, *models.Grade) (*models.Grade, error) {
	return nil, f.err
}
func (f *failingGrades) Update(context.Context, int, models.GradePatch) (*models.Grade, error) {
	return nil, f.err
}
func (f *failingGrades) Delete(context.Context, int) error { return f.err }

func unavailable() error {
	return appErrors.Clone(appErrors.ErrUnavailable, "record store unreachable")
}

// fakeCacheRepo is an in-memory CacheRepository for cache-path tests.
type fakeCacheRepo struct {
	entries map[string][]byte
	sets    int
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{entries: map[string][]byte{}}
}

func (f *fakeCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := f.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	f.sets++
	return nil
}

func (f *fakeCacheRepo) DeleteByPattern(context.Context, string) error {
	f.entries = map[string][]byte{}
	return nil
}
