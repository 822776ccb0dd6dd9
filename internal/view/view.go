// Package view holds the per-request state of the admin pages: the users list
// and the create/edit form. Views never cache records; each one is built for
// a single activation and re-fetches what it renders.
package view

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"usersadmin/internal/api"
	"usersadmin/internal/model"
)

// Routes exposed to the browser.
const (
	RouteList   = "/"
	RouteCreate = "/create"
	RouteEdit   = "/edit"
)

// EditQueryParam carries the id of the user being edited.
const EditQueryParam = "user_id"

// UsersAPI is the subset of the users backend the views depend on.
type UsersAPI interface {
	List(ctx context.Context) (*api.Response[[]model.User], error)
	Get(ctx context.Context, id int) (*api.Response[*model.User], error)
	Create(ctx context.Context, user model.User) (*api.Response[*model.User], error)
	Update(ctx context.Context, user model.User) (*api.Response[*model.User], error)
	Delete(ctx context.Context, id int) (*api.Response[json.RawMessage], error)
}

// Navigator moves the browser to another route.
type Navigator interface {
	Navigate(path string, query url.Values)
	// Reload re-enters the current route so it fetches its data again.
	Reload()
}

// EditURL returns the edit route for id.
func EditURL(id int) string {
	return RouteEdit + "?" + editQuery(id).Encode()
}

func editQuery(id int) url.Values {
	return url.Values{EditQueryParam: {strconv.Itoa(id)}}
}
