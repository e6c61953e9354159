package inmemdb

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/profile"
)

type profileRepository struct {
	db *profileTable
}

func NewProfileRepository(db *DB) profile.Repository {
	return &profileRepository{db: db.profile}
}

// query must be called with the lock held.
func (repo *profileRepository) query() []profile.Profile {
	profiles := make([]profile.Profile, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		profiles = append(profiles, repo.db.table[id].Clone())
	}
	return profiles
}

func (repo *profileRepository) GetProfileByID(_ context.Context, id string) (profile.Profile, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if p, ok := repo.db.table[id]; ok {
		return p.Clone(), nil
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (repo *profileRepository) GetProfileByEmail(_ context.Context, email string) (profile.Profile, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	email = core.CleanString(email, true /* lower */)
	for _, id := range repo.db.order {
		if p := repo.db.table[id]; p.Email == email {
			return p.Clone(), nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (repo *profileRepository) CreateProfile(_ context.Context, p profile.Profile) (profile.Profile, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if p.ID == "" {
		return profile.Profile{}, errors.New("creating profile: missing id")
	}
	if _, ok := repo.db.table[p.ID]; ok {
		return profile.Profile{}, errors.Errorf("creating profile: id %q already exists", p.ID)
	}
	p.Email = core.CleanString(p.Email, true /* lower */)
	for _, id := range repo.db.order {
		if repo.db.table[id].Email == p.Email {
			return profile.Profile{}, profile.ErrEmailExists
		}
	}

	p.EnsureState()
	row := p.Clone()
	repo.db.table[p.ID] = &row
	repo.db.order = append(repo.db.order, p.ID)
	return p.Clone(), nil
}

func (repo *profileRepository) QueryAllProfiles(_ context.Context) ([]profile.Profile, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}
