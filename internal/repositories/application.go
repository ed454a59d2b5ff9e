package repositories

import (
	"fmt"
	"sync"

	"job-application-api/internal/models"
)

type ApplicationRepository interface {
	NextID() string
	Add(app *models.JobApplication)
	FindByID(id string) (*models.JobApplication, error)
	FindAll() []*models.JobApplication
	Count() int
	Reset() int
}

type applicationRepository struct {
	mu      sync.Mutex
	apps    []*models.JobApplication
	nextSeq int
}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

// NextID reserves the next sequential identifier. Reserving under the lock
// keeps concurrent submissions from computing the same number.
func (r *applicationRepository) NextID() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSeq++
	return fmt.Sprintf("APP-%05d", r.nextSeq)
}

// Add implements ApplicationRepository.
func (r *applicationRepository) Add(app *models.JobApplication) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.apps = append(r.apps, app)
}

// FindByID implements ApplicationRepository.
func (r *applicationRepository) FindByID(id string) (*models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, app := range r.apps {
		if app.ApplicationID == id {
			return app, nil
		}
	}

	return nil, ErrNotFound
}

// FindAll returns all applications in insertion order.
func (r *applicationRepository) FindAll() []*models.JobApplication {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.JobApplication, len(r.apps))
	copy(out, r.apps)
	return out
}

// Count implements ApplicationRepository.
func (r *applicationRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.apps)
}

// Reset clears all records and returns the prior count. The sequence counter
// restarts too, so the next submission gets APP-00001 again.
func (r *applicationRepository) Reset() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.apps)
	r.apps = nil
	r.nextSeq = 0
	return n
}
