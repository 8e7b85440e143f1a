package service

import (
	"context"
	"time"

	"github.com/campusconnect/backend/internal/domain"
	"github.com/google/uuid"
)

// In-memory stand-ins for the postgres repositories. They assign
// monotonically increasing timestamps on insert, mimicking server-side
// timestamp assignment.

type fakeProfileRepo struct {
	order    []uuid.UUID
	profiles map[uuid.UUID]domain.Profile
	err      error
}

func newFakeProfileRepo(profiles ...domain.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[uuid.UUID]domain.Profile)}
	for _, p := range profiles {
		r.order = append(r.order, p.ID)
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProfileRepo) ListExcept(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Profile
	for _, id := range r.order {
		if id == userID {
			continue
		}
		out = append(out, r.profiles[id])
	}
	return out, nil
}

type fakeMessageRepo struct {
	profiles  *fakeProfileRepo
	messages  []domain.DirectMessage
	clock     time.Time
	createErr error
}

func newFakeMessageRepo(profiles *fakeProfileRepo) *fakeMessageRepo {
	return &fakeMessageRepo{
		profiles: profiles,
		clock:    time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *fakeMessageRepo) Create(ctx context.Context, msg *domain.DirectMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	stored := *msg
	r.clock = r.clock.Add(time.Second)
	stored.CreatedAt = r.clock
	r.messages = append(r.messages, stored)
	return nil
}

func (r *fakeMessageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DirectMessage, error) {
	for _, m := range r.messages {
		if m.ID == id {
			return r.joined(m), nil
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.DirectMessage, error) {
	var out []domain.DirectMessage
	for _, m := range r.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, *r.joined(m))
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) ListConversation(ctx context.Context, userID, contactID uuid.UUID) ([]domain.DirectMessage, error) {
	var out []domain.DirectMessage
	for _, m := range r.messages {
		if (m.SenderID == userID && m.ReceiverID == contactID) ||
			(m.SenderID == contactID && m.ReceiverID == userID) {
			out = append(out, *r.joined(m))
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) joined(m domain.DirectMessage) *domain.DirectMessage {
	if s, ok := r.profiles.profiles[m.SenderID]; ok {
		m.SenderName, m.SenderUSN = s.Name, s.USN
	}
	if t, ok := r.profiles.profiles[m.ReceiverID]; ok {
		m.ReceiverName, m.ReceiverUSN = t.Name, t.USN
	}
	return &m
}

type fakeBoardRepo struct {
	profiles  *fakeProfileRepo
	messages  []domain.BoardMessage
	clock     time.Time
	createErr error
	listErr   error
}

func newFakeBoardRepo(profiles *fakeProfileRepo) *fakeBoardRepo {
	return &fakeBoardRepo{
		profiles: profiles,
		clock:    time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *fakeBoardRepo) Create(ctx context.Context, msg *domain.BoardMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	stored := *msg
	r.clock = r.clock.Add(time.Second)
	stored.CreatedAt = r.clock
	r.messages = append(r.messages, stored)
	return nil
}

func (r *fakeBoardRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BoardMessage, error) {
	for _, m := range r.messages {
		if m.ID == id {
			return r.joined(m), nil
		}
	}
	return nil, nil
}

func (r *fakeBoardRepo) ListRecent(ctx context.Context, limit int) ([]domain.BoardMessage, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []domain.BoardMessage
	for i := len(r.messages) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.joined(r.messages[i]))
	}
	return out, nil
}

func (r *fakeBoardRepo) joined(m domain.BoardMessage) *domain.BoardMessage {
	if s, ok := r.profiles.profiles[m.SenderID]; ok {
		m.SenderName, m.SenderUSN, m.SenderAvatarURL = s.Name, s.USN, s.AvatarURL
	}
	return &m
}
