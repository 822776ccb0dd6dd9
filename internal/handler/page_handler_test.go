package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"usersadmin/internal/api"
	"usersadmin/internal/model"
	"usersadmin/internal/web"
)

// MockUsersAPI is a mock implementation of view.UsersAPI.
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

func newAdmin(t *testing.T, users *MockUsersAPI) *echo.Echo {
	t.Helper()
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	h := NewPageHandler(users)
	e.GET("/", h.List)
	e.GET("/create", h.ShowForm)
	e.POST("/create", h.SubmitForm)
	e.GET("/edit", h.ShowForm)
	e.POST("/edit", h.SubmitForm)
	e.POST("/users/:id/delete", h.Delete)
	return e
}

func postForm(e *echo.Echo, target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func formValues() url.Values {
	return url.Values{
		"user_name":   {"jsmith"},
		"first_name":  {"John"},
		"last_name":   {"Smith"},
		"email":       {"jsmith@example.com"},
		"user_status": {"T"},
		"department":  {""},
	}
}

func TestPageHandler_List(t *testing.T) {
	users := new(MockUsersAPI)
	users.On("List", mock.Anything).Return(&api.Response[[]model.User]{Data: []model.User{
		{UserID: 1, UserName: "johndoe", UserStatus: model.StatusActive},
	}}, nil)

	rec := get(newAdmin(t, users), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<td>johndoe</td>")
	assert.Contains(t, rec.Body.String(), "<td>Active</td>")
}

func TestPageHandler_DeleteRedirectsToList(t *testing.T) {
	users := new(MockUsersAPI)
	users.On("Delete", mock.Anything, 1).Return(nil, &api.Error{StatusCode: 404, Message: "User not found"}).Once()

	rec := postForm(newAdmin(t, users), "/users/1/delete", url.Values{})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	users.AssertExpectations(t)
}

func TestPageHandler_EditFormLoads(t *testing.T) {
	users := new(MockUsersAPI)
	users.On("Get", mock.Anything, 1).Return(&api.Response[*model.User]{Data: &model.User{
		UserID: 1, UserName: "johndoe", FirstName: "John", LastName: "Doe", Email: "johndoe@gmail.com", UserStatus: model.StatusInactive,
	}}, nil)

	rec := get(newAdmin(t, users), "/edit?user_id=1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="johndoe"`)
	assert.Contains(t, body, `<option value="I" selected>Inactive</option>`)
}

func TestPageHandler_EditFormWithoutIDRedirects(t *testing.T) {
	users := new(MockUsersAPI)

	rec := get(newAdmin(t, users), "/edit")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Empty(t, users.Calls)
}

func TestPageHandler_CreateSubmit(t *testing.T) {
	users := new(MockUsersAPI)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.UserID == 0 && u.UserName == "jsmith" && u.UserStatus == model.StatusTerminated
	})).Return(&api.Response[*model.User]{Data: &model.User{UserID: 3}}, nil).Once()

	rec := postForm(newAdmin(t, users), "/create", formValues())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	users.AssertExpectations(t)
}

func TestPageHandler_CreateConflict(t *testing.T) {
	users := new(MockUsersAPI)
	users.On("Create", mock.Anything, mock.Anything).Return(nil, &api.Error{StatusCode: 400, Message: "User already exists"}).Once()

	rec := postForm(newAdmin(t, users), "/create", formValues())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "User name jsmith is already taken")
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
}

func TestPageHandler_InvalidSubmitNeverCallsBackend(t *testing.T) {
	users := new(MockUsersAPI)
	values := formValues()
	values.Set("email", "broken")

	rec := postForm(newAdmin(t, users), "/create", values)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Enter a valid email address")
	assert.Contains(t, rec.Body.String(), `id="submit" disabled`)
	assert.Empty(t, users.Calls)
}

func TestPageHandler_EditSubmit(t *testing.T) {
	users := new(MockUsersAPI)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.UserID == 1 && u.LastName == "Smith"
	})).Return(&api.Response[*model.User]{Data: &model.User{UserID: 1}}, nil).Once()

	rec := postForm(newAdmin(t, users), "/edit?user_id=1", formValues())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	users.AssertExpectations(t)
}
