package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ornasync/feature/guide"
)

// AdminGuide is a mock implementation of guide.AdminGuide
type AdminGuide struct {
	mock.Mock
}

func (m *AdminGuide) ListItems(ctx context.Context) ([]guide.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]guide.Entry), args.Error(1)
}

func (m *AdminGuide) FetchItem(ctx context.Context, id uint32) (*guide.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guide.Item), args.Error(1)
}

func (m *AdminGuide) SaveItem(ctx context.Context, item *guide.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *AdminGuide) AddItem(ctx context.Context, item *guide.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *AdminGuide) ListMonsters(ctx context.Context) ([]guide.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]guide.Entry), args.Error(1)
}

func (m *AdminGuide) FetchMonster(ctx context.Context, id uint32) (*guide.Monster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guide.Monster), args.Error(1)
}

func (m *AdminGuide) SaveMonster(ctx context.Context, monster *guide.Monster) error {
	args := m.Called(ctx, monster)
	return args.Error(0)
}

func (m *AdminGuide) AddMonster(ctx context.Context, monster *guide.Monster) error {
	args := m.Called(ctx, monster)
	return args.Error(0)
}

func (m *AdminGuide) ListSkills(ctx context.Context) ([]guide.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]guide.Entry), args.Error(1)
}

func (m *AdminGuide) FetchSkill(ctx context.Context, id uint32) (*guide.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guide.Skill), args.Error(1)
}

func (m *AdminGuide) SaveSkill(ctx context.Context, skill *guide.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *AdminGuide) AddSkill(ctx context.Context, skill *guide.Skill) error {
	args := m.Called(ctx, skill)
	return args.Error(0)
}

func (m *AdminGuide) ListPets(ctx context.Context) ([]guide.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]guide.Entry), args.Error(1)
}

func (m *AdminGuide) FetchPet(ctx context.Context, id uint32) (*guide.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guide.Pet), args.Error(1)
}

func (m *AdminGuide) SavePet(ctx context.Context, pet *guide.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *AdminGuide) AddPet(ctx context.Context, pet *guide.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *AdminGuide) FetchStatic(ctx context.Context) (*guide.Static, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*guide.Static), args.Error(1)
}

func (m *AdminGuide) ListStatusEffects(ctx context.Context) ([]guide.NamedID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]guide.NamedID), args.Error(1)
}

func (m *AdminGuide) AddStatusEffect(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *AdminGuide) ListSpawns(ctx context.Context) ([]guide.NamedID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]guide.NamedID), args.Error(1)
}

func (m *AdminGuide) AddSpawn(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
