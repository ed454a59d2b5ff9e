package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"job-application-api/internal/models"
)

// ErrNotFound is returned by lookups against either in-memory store.
var ErrNotFound = errors.New("not found")

type SessionRepository interface {
	Create(position, difficulty string, questions []models.InterviewQuestion) string
	AttachEvaluation(id string, eval *models.Evaluation)
	FindByID(id string) (*models.InterviewSession, error)
	All() map[string]*models.InterviewSession
	Count() int
	Reset() int
}

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*models.InterviewSession
	nextSeq  int
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*models.InterviewSession),
	}
}

// Create implements SessionRepository.
func (r *sessionRepository) Create(position, difficulty string, questions []models.InterviewQuestion) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSeq++
	id := fmt.Sprintf("SESSION-%05d", r.nextSeq)

	r.sessions[id] = &models.InterviewSession{
		Position:   position,
		Difficulty: difficulty,
		Questions:  questions,
		CreatedAt:  time.Now().Format(time.RFC3339),
	}

	return id
}

// AttachEvaluation stores the evaluation under the given identifier. An
// unknown identifier gets a bare session created for it, so any caller-supplied
// id can receive an evaluation. A prior evaluation is overwritten silently.
func (r *sessionRepository) AttachEvaluation(id string, eval *models.Evaluation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		session = &models.InterviewSession{}
		r.sessions[id] = session
	}

	session.Evaluation = eval
}

// FindByID implements SessionRepository.
func (r *sessionRepository) FindByID(id string) (*models.InterviewSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	return session, nil
}

// All returns a copy of the session map keyed by identifier.
func (r *sessionRepository) All() map[string]*models.InterviewSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]*models.InterviewSession, len(r.sessions))
	for id, session := range r.sessions {
		out[id] = session
	}
	return out
}

// Count implements SessionRepository.
func (r *sessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Reset implements SessionRepository.
func (r *sessionRepository) Reset() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.sessions)
	r.sessions = make(map[string]*models.InterviewSession)
	r.nextSeq = 0
	return n
}
