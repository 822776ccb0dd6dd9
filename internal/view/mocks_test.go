package view

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/stretchr/testify/mock"

	"usersadmin/internal/api"
	"usersadmin/internal/model"
)

// MockUsersAPI is a mock implementation of UsersAPI.
type MockUsersAPI struct {
	mock.Mock
}

func (m *MockUsersAPI) List(ctx context.Context) (*api.Response[[]model.User], error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Response[[]model.User]), args.Error(1)
}

func (m *MockUsersAPI) Get(ctx context.Context, id int) (*api.Response[*model.User], error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Response[*model.User]), args.Error(1)
}

func (m *MockUsersAPI) Create(ctx context.Context, user model.User) (*api.Response[*model.User], error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Response[*model.User]), args.Error(1)
}

func (m *MockUsersAPI) Update(ctx context.Context, user model.User) (*api.Response[*model.User], error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Response[*model.User]), args.Error(1)
}

func (m *MockUsersAPI) Delete(ctx context.Context, id int) (*api.Response[json.RawMessage], error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.Response[json.RawMessage]), args.Error(1)
}

type navigation struct {
	Path  string
	Query url.Values
}

// recordingNavigator remembers every navigation.
type recordingNavigator struct {
	navigations []navigation
	reloads     int
}

func (n *recordingNavigator) Navigate(path string, query url.Values) {
	n.navigations = append(n.navigations, navigation{Path: path, Query: query})
}

func (n *recordingNavigator) Reload() {
	n.reloads++
}

var (
	johnDoe = model.User{UserID: 1, UserName: "johndoe", FirstName: "John", LastName: "Doe", Email: "johndoe@gmail.com", UserStatus: model.StatusActive, Department: "IT"}
	janeDoe = model.User{UserID: 2, UserName: "janedoe", FirstName: "Jane", LastName: "Doe", Email: "janedoe@gmail.com", UserStatus: model.StatusInactive}
)
