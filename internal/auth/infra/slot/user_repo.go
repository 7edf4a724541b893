package slot

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
	"github.com/dwikikusuma/storefront/pkg/slotstore"
)

type UserRepo struct {
	store slotstore.Store
	log   *slog.Logger
}

func NewUserRepo(store slotstore.Store, log *slog.Logger) *UserRepo {
	return &UserRepo{store: store, log: log}
}

func (r *UserRepo) Load(ctx context.Context) ([]domain.User, error) {
	data, err := r.store.Get(ctx, slotstore.SlotUsers)
	if errors.Is(err, slotstore.ErrSlotEmpty) {
		return []domain.User{}, nil
	}
	if err != nil {
		r.log.Warn("users slot read failed", slog.Any("err", err))
		return []domain.User{}, nil
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		r.log.Warn("users slot corrupt", slog.Any("err", err))
		return []domain.User{}, nil
	}
	return users, nil
}

func (r *UserRepo) Save(ctx context.Context, users []domain.User) error {
	if users == nil {
		users = []domain.User{}
	}
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, slotstore.SlotUsers, data)
}

// SessionRepo stores the current user in the session slot; a missing slot
// means anonymous.
type SessionRepo struct {
	store slotstore.Store
}

func NewSessionRepo(store slotstore.Store) *SessionRepo {
	return &SessionRepo{store: store}
}

func (r *SessionRepo) Get(ctx context.Context) (domain.Session, bool, error) {
	data, err := r.store.Get(ctx, slotstore.SlotSession)
	if errors.Is(err, slotstore.ErrSlotEmpty) {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, err
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return domain.Session{}, false, nil
	}
	return sess, true, nil
}

func (r *SessionRepo) Put(ctx context.Context, sess domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, slotstore.SlotSession, data)
}

func (r *SessionRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, slotstore.SlotSession)
}
