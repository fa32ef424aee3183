// Package memory provides a mutex-guarded in-process implementation of the
// record store interfaces. It backs the test suites and serves as a
// zero-dependency fallback backend.
package memory

import (
	"context"
	"sort"
	"sync"

	"learnquest/internal/models"
	"learnquest/internal/store"
)

// Store holds every collection in memory behind one lock
type Store struct {
	mu     sync.RWMutex
	nextID int64

	activities map[int64]models.Activity
	children   map[int64]models.Child
	levels     map[int64]models.Level
	progress   map[int64]models.Progress
	questions  map[int64]models.Question
}

// New creates an empty in-memory store
func New() *Store {
	return &Store{
		nextID:     1,
		activities: make(map[int64]models.Activity),
		children:   make(map[int64]models.Child),
		levels:     make(map[int64]models.Level),
		progress:   make(map[int64]models.Progress),
		questions:  make(map[int64]models.Question),
	}
}

// Stores returns the store bundle backed by this instance
func (s *Store) Stores() store.Stores {
	return store.Stores{
		Activities: &activityStore{s},
		Children:   &childStore{s},
		Levels:     &levelStore{s},
		Progress:   &progressStore{s},
		Questions:  &questionStore{s},
	}
}

func (s *Store) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// SeedLevel inserts a level directly, for tests and fixtures
func (s *Store) SeedLevel(level models.Level) models.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	if level.ID == 0 {
		level.ID = s.allocID()
	} else if level.ID >= s.nextID {
		s.nextID = level.ID + 1
	}
	s.levels[level.ID] = level
	return level
}

// SeedQuestion inserts a question directly, for tests and fixtures
func (s *Store) SeedQuestion(q models.Question) models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q.ID == 0 {
		q.ID = s.allocID()
	} else if q.ID >= s.nextID {
		s.nextID = q.ID + 1
	}
	s.questions[q.ID] = q
	return q
}

type activityStore struct{ s *Store }

func (a *activityStore) GetAll(ctx context.Context) ([]models.Activity, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	out := make([]models.Activity, 0, len(a.s.activities))
	for _, v := range a.s.activities {
		out = append(out, v)
	}
	sortActivities(out)
	return out, nil
}

func (a *activityStore) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	v, ok := a.s.activities[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &v, nil
}

func (a *activityStore) GetByChildID(ctx context.Context, childID int64) ([]models.Activity, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	out := make([]models.Activity, 0)
	for _, v := range a.s.activities {
		if v.ChildID == childID {
			out = append(out, v)
		}
	}
	sortActivities(out)
	return out, nil
}

func (a *activityStore) GetByLevelID(ctx context.Context, levelID int64) ([]models.Activity, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	out := make([]models.Activity, 0)
	for _, v := range a.s.activities {
		if v.LevelID == levelID {
			out = append(out, v)
		}
	}
	sortActivities(out)
	return out, nil
}

func (a *activityStore) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	created := *activity
	created.ID = a.s.allocID()
	a.s.activities[created.ID] = created
	return &created, nil
}

func (a *activityStore) Update(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.activities[activity.ID]; !ok {
		return nil, store.ErrNotFound
	}
	updated := *activity
	a.s.activities[updated.ID] = updated
	return &updated, nil
}

func (a *activityStore) Delete(ctx context.Context, id int64) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.activities[id]; !ok {
		return store.ErrNotFound
	}
	delete(a.s.activities, id)
	return nil
}

// sortActivities orders most recent first, matching the remote backend
func sortActivities(activities []models.Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CompletedAt.After(activities[j].CompletedAt)
	})
}

type childStore struct{ s *Store }

func (c *childStore) GetAll(ctx context.Context) ([]models.Child, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	out := make([]models.Child, 0, len(c.s.children))
	for _, v := range c.s.children {
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *childStore) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	v, ok := c.s.children[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &v, nil
}

func (c *childStore) Create(ctx context.Context, child *models.Child) (*models.Child, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	created := *child
	created.ID = c.s.allocID()
	c.s.children[created.ID] = created
	return &created, nil
}

func (c *childStore) Update(ctx context.Context, child *models.Child) (*models.Child, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.children[child.ID]; !ok {
		return nil, store.ErrNotFound
	}
	updated := *child
	c.s.children[updated.ID] = updated
	return &updated, nil
}

func (c *childStore) Delete(ctx context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.children[id]; !ok {
		return store.ErrNotFound
	}
	delete(c.s.children, id)
	return nil
}

type levelStore struct{ s *Store }

func (l *levelStore) GetAll(ctx context.Context) ([]models.Level, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	out := make([]models.Level, 0, len(l.s.levels))
	for _, v := range l.s.levels {
		out = append(out, v)
	}
	sortLevels(out)
	return out, nil
}

func (l *levelStore) GetByID(ctx context.Context, id int64) (*models.Level, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	v, ok := l.s.levels[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &v, nil
}

func (l *levelStore) GetBySubject(ctx context.Context, subject models.Subject) ([]models.Level, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	out := make([]models.Level, 0)
	for _, v := range l.s.levels {
		if v.Subject == subject {
			out = append(out, v)
		}
	}
	sortLevels(out)
	return out, nil
}

func (l *levelStore) Create(ctx context.Context, level *models.Level) (*models.Level, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	created := *level
	created.ID = l.s.allocID()
	l.s.levels[created.ID] = created
	return &created, nil
}

func (l *levelStore) Update(ctx context.Context, level *models.Level) (*models.Level, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	if _, ok := l.s.levels[level.ID]; !ok {
		return nil, store.ErrNotFound
	}
	updated := *level
	l.s.levels[updated.ID] = updated
	return &updated, nil
}

// sortLevels applies the canonical OrderIndex sequence
func sortLevels(levels []models.Level) {
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].OrderIndex < levels[j].OrderIndex
	})
}

type progressStore struct{ s *Store }

func (p *progressStore) GetAll(ctx context.Context) ([]models.Progress, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	out := make([]models.Progress, 0, len(p.s.progress))
	for _, v := range p.s.progress {
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (p *progressStore) GetByChildID(ctx context.Context, childID int64) ([]models.Progress, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	out := make([]models.Progress, 0)
	for _, v := range p.s.progress {
		if v.ChildID == childID {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (p *progressStore) GetByChildAndSubject(ctx context.Context, childID int64, subject models.Subject) ([]models.Progress, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	out := make([]models.Progress, 0)
	for _, v := range p.s.progress {
		if v.ChildID == childID && v.Subject == subject {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (p *progressStore) Create(ctx context.Context, progress *models.Progress) (*models.Progress, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	// One record per (child, subject, skill area)
	for _, v := range p.s.progress {
		if v.ChildID == progress.ChildID && v.Subject == progress.Subject && v.SkillArea == progress.SkillArea {
			return nil, &store.ValidationError{Fields: []store.FieldError{
				{Field: "skillArea", Message: "progress record already exists for this skill area"},
			}}
		}
	}
	created := *progress
	created.ID = p.s.allocID()
	p.s.progress[created.ID] = created
	return &created, nil
}

func (p *progressStore) Update(ctx context.Context, progress *models.Progress) (*models.Progress, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.progress[progress.ID]; !ok {
		return nil, store.ErrNotFound
	}
	// The (child, subject, skill area) key stays unique across updates too
	for id, v := range p.s.progress {
		if id == progress.ID {
			continue
		}
		if v.ChildID == progress.ChildID && v.Subject == progress.Subject && v.SkillArea == progress.SkillArea {
			return nil, &store.ValidationError{Fields: []store.FieldError{
				{Field: "skillArea", Message: "progress record already exists for this skill area"},
			}}
		}
	}
	updated := *progress
	p.s.progress[updated.ID] = updated
	return &updated, nil
}

type questionStore struct{ s *Store }

func (q *questionStore) GetAll(ctx context.Context) ([]models.Question, error) {
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()
	out := make([]models.Question, 0, len(q.s.questions))
	for _, v := range q.s.questions {
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (q *questionStore) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()
	v, ok := q.s.questions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &v, nil
}

func (q *questionStore) GetByLevelID(ctx context.Context, levelID int64) ([]models.Question, error) {
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()
	out := make([]models.Question, 0)
	for _, v := range q.s.questions {
		if v.LevelID == levelID {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (q *questionStore) Create(ctx context.Context, question *models.Question) (*models.Question, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	created := *question
	created.ID = q.s.allocID()
	q.s.questions[created.ID] = created
	return &created, nil
}

func (q *questionStore) GetBySubject(ctx context.Context, subject models.Subject) ([]models.Question, error) {
	q.s.mu.RLock()
	defer q.s.mu.RUnlock()
	out := make([]models.Question, 0)
	for _, v := range q.s.questions {
		if v.Subject == subject {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
