package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ornasync/feature/codex"
)

// Client is a mock implementation of codex.Client
type Client struct {
	mock.Mock
}

func (m *Client) List(ctx context.Context, kind codex.Kind) ([]codex.ListEntry, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]codex.ListEntry), args.Error(1)
}

func (m *Client) FetchItem(ctx context.Context, slug string) (*codex.Item, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*codex.Item), args.Error(1)
}

func (m *Client) FetchMonster(ctx context.Context, slug string) (*codex.Monster, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*codex.Monster), args.Error(1)
}

func (m *Client) FetchBoss(ctx context.Context, slug string) (*codex.Boss, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*codex.Boss), args.Error(1)
}

func (m *Client) FetchRaid(ctx context.Context, slug string) (*codex.Raid, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*codex.Raid), args.Error(1)
}

func (m *Client) FetchSkill(ctx context.Context, slug string) (*codex.Skill, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*codex.Skill), args.Error(1)
}

func (m *Client) FetchFollower(ctx context.Context, slug string) (*codex.Follower, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*codex.Follower), args.Error(1)
}
