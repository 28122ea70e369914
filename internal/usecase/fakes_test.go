package usecase

import (
	"context"

	"realtor-listings/internal/data/entity"
	"realtor-listings/internal/data/repository"
)

// In-memory repository fakes for service tests.

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

type fakeHomeRepo struct {
	homes   map[int64]*entity.Home
	nextID  int64
	updates int
}

func newFakeHomeRepo() *fakeHomeRepo {
	return &fakeHomeRepo{homes: make(map[int64]*entity.Home), nextID: 1}
}

func (f *fakeHomeRepo) Create(ctx context.Context, home *entity.Home) error {
	home.ID = f.nextID
	f.nextID++
	copied := *home
	f.homes[home.ID] = &copied
	return nil
}

func (f *fakeHomeRepo) FindByID(ctx context.Context, id int64) (*entity.Home, error) {
	home, ok := f.homes[id]
	if !ok {
		return nil, nil
	}
	copied := *home
	return &copied, nil
}

func (f *fakeHomeRepo) matches(home *entity.Home, filter repository.HomeFilter) bool {
	if filter.City != nil && home.City != *filter.City {
		return false
	}
	if filter.MinPrice != nil && home.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && home.Price > *filter.MaxPrice {
		return false
	}
	if filter.PropertyType != nil && home.PropertyType != *filter.PropertyType {
		return false
	}
	return true
}

func (f *fakeHomeRepo) FindAll(ctx context.Context, filter repository.HomeFilter, limit, offset int) ([]*entity.Home, error) {
	var all []*entity.Home
	for id := int64(1); id < f.nextID; id++ {
		home, ok := f.homes[id]
		if !ok || !f.matches(home, filter) {
			continue
		}
		copied := *home
		all = append(all, &copied)
	}

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeHomeRepo) CountAll(ctx context.Context, filter repository.HomeFilter) (int64, error) {
	var total int64
	for _, home := range f.homes {
		if f.matches(home, filter) {
			total++
		}
	}
	return total, nil
}

func (f *fakeHomeRepo) Update(ctx context.Context, home *entity.Home) error {
	f.updates++
	copied := *home
	f.homes[home.ID] = &copied
	return nil
}

func (f *fakeHomeRepo) Delete(ctx context.Context, id int64) error {
	delete(f.homes, id)
	return nil
}

type fakeImageRepo struct {
	images map[int64][]*entity.Image
	nextID int64
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[int64][]*entity.Image), nextID: 1}
}

func (f *fakeImageRepo) Create(ctx context.Context, image *entity.Image) error {
	image.ID = f.nextID
	f.nextID++
	f.images[image.HomeID] = append(f.images[image.HomeID], image)
	return nil
}

func (f *fakeImageRepo) FindByHomeID(ctx context.Context, homeID int64) ([]*entity.Image, error) {
	return f.images[homeID], nil
}

func (f *fakeImageRepo) DeleteByHomeID(ctx context.Context, homeID int64) error {
	delete(f.images, homeID)
	return nil
}

type fakeMessageRepo struct {
	messages map[int64][]*entity.Message
	nextID   int64
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[int64][]*entity.Message), nextID: 1}
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	message.ID = f.nextID
	f.nextID++
	f.messages[message.HomeID] = append(f.messages[message.HomeID], message)
	return nil
}

func (f *fakeMessageRepo) FindByHomeID(ctx context.Context, homeID int64) ([]*entity.Message, error) {
	return f.messages[homeID], nil
}

func (f *fakeMessageRepo) DeleteByHomeID(ctx context.Context, homeID int64) error {
	delete(f.messages, homeID)
	return nil
}

func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		User:    newFakeUserRepo(),
		Home:    newFakeHomeRepo(),
		Image:   newFakeImageRepo(),
		Message: newFakeMessageRepo(),
	}
}
