package usecase_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

// fakeUserRepo stores users in memory, keyed by id.
type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]entity.User
	failWrite bool
	// missLookups makes that many GetUserByEmail calls report not found.
	missLookups int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite {
		return errors.New("write failed")
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return contract.ErrDuplicateEmail
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	u.Password = ""
	return &u, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	if r.missLookups > 0 {
		r.missLookups--
		r.mu.Unlock()
		return nil, contract.ErrUserNotFound
	}
	r.mu.Unlock()
	u, err := r.GetUserByEmailWithPassword(ctx, email)
	if err != nil {
		return nil, err
	}
	u.Password = ""
	return u, nil
}

func (r *fakeUserRepo) GetUserByEmailWithPassword(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

// fakeCourseRepo stores courses in memory and counts writes.
type fakeCourseRepo struct {
	courses   map[string]entity.Course
	saves     int
	failSave  bool
	failWrite bool
}

func newFakeCourseRepo(courses ...entity.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: map[string]entity.Course{}}
	for _, c := range courses {
		r.courses[c.ID] = c
	}
	return r
}

func (r *fakeCourseRepo) CreateCourse(ctx context.Context, course *entity.Course) error {
	if r.failWrite {
		return errors.New("insert failed")
	}
	r.courses[course.ID] = cloneCourse(*course)
	return nil
}

func (r *fakeCourseRepo) GetCourseByID(ctx context.Context, id string) (*entity.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, contract.ErrCourseNotFound
	}
	c = cloneCourse(c)
	return &c, nil
}

func (r *fakeCourseRepo) ListCourses(ctx context.Context) ([]entity.Course, error) {
	out := make([]entity.Course, 0, len(r.courses))
	for _, c := range r.courses {
		c.Lectures = nil
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCourseRepo) SaveCourse(ctx context.Context, course *entity.Course) error {
	if r.failSave {
		return errors.New("save failed")
	}
	if _, ok := r.courses[course.ID]; !ok {
		return contract.ErrCourseNotFound
	}
	r.saves++
	r.courses[course.ID] = cloneCourse(*course)
	return nil
}

func (r *fakeCourseRepo) DeleteCourse(ctx context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return contract.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

func cloneCourse(c entity.Course) entity.Course {
	if c.Lectures != nil {
		c.Lectures = append([]entity.Lecture(nil), c.Lectures...)
	}
	if c.Thumbnail != nil {
		t := *c.Thumbnail
		c.Thumbnail = &t
	}
	return c
}

type assetCall struct {
	op       string
	publicID string
	kind     entity.AssetKind
	opts     contract.UploadOptions
}

// fakeAssetStore records every call in order.
type fakeAssetStore struct {
	calls         []assetCall
	failUpload    bool
	failDestroy   bool
	sawDeadline   bool
	uploadCounter int
}

func (s *fakeAssetStore) Upload(ctx context.Context, file *entity.StagedFile, opts contract.UploadOptions) (*entity.Asset, error) {
	_, s.sawDeadline = ctx.Deadline()
	s.calls = append(s.calls, assetCall{op: "upload", kind: opts.Kind, opts: opts})
	if s.failUpload {
		return nil, errors.New("asset host unavailable")
	}
	s.uploadCounter++
	id := opts.Folder + "/" + file.OriginalName
	return &entity.Asset{PublicID: id, SecureURL: "https://cdn.example.com/" + id}, nil
}

func (s *fakeAssetStore) Destroy(ctx context.Context, publicID string, kind entity.AssetKind) error {
	s.calls = append(s.calls, assetCall{op: "destroy", publicID: publicID, kind: kind})
	if s.failDestroy {
		return errors.New("destroy failed")
	}
	return nil
}

func (s *fakeAssetStore) count(op string) int {
	n := 0
	for _, c := range s.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

// fakeCourseCache is an in-memory course list cache.
type fakeCourseCache struct {
	list          []entity.Course
	cached        bool
	invalidations int
}

func (c *fakeCourseCache) GetCourseList(ctx context.Context) ([]entity.Course, bool, error) {
	return c.list, c.cached, nil
}

func (c *fakeCourseCache) SetCourseList(ctx context.Context, courses []entity.Course) error {
	c.list, c.cached = courses, true
	return nil
}

func (c *fakeCourseCache) InvalidateCourseList(ctx context.Context) error {
	c.list, c.cached = nil, false
	c.invalidations++
	return nil
}

type stubConfig struct{}

func (stubConfig) GetAssetFolder() string { return "lms" }

func (stubConfig) GetAssetTimeout() time.Duration { return time.Minute }

func (stubConfig) GetVideoChunkSize() int { return 50000000 }

func (stubConfig) GetDefaultAvatarURL() string { return "https://cdn.example.com/default.jpg" }

type sequentialIDs struct{ n int }

func (g *sequentialIDs) NewUUID() string {
	g.n++
	return "id-" + strconv.Itoa(g.n)
}
