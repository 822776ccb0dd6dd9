package view

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"usersadmin/internal/api"
	"usersadmin/internal/logging"
)

// ConflictMessage is the backend failure message for a taken user name.
const ConflictMessage = "User already exists"

// SubmitNotice is shown when a save fails for any reason other than a conflict.
const SubmitNotice = "The user could not be saved. Try again later."

// Mode tells whether the form creates a new user or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// State is the form's position in its lifecycle.
type State int

const (
	StateCreate State = iota
	StateEditLoading
	StateEditReady
	StateSubmitting
	// StateDone means the form navigated away and accepts nothing further.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateCreate:
		return "create"
	case StateEditLoading:
		return "edit-loading"
	case StateEditReady:
		return "edit-ready"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// FormView is the user form, shared by the create and edit routes.
type FormView struct {
	Mode   Mode
	State  State
	Fields Fields
	// Conflict holds the user name the backend reported as taken.
	Conflict string
	Notice   string

	query url.Values
	api   UsersAPI
	nav   Navigator
}

// NewFormView decides the mode from route: a path containing "edit" edits,
// anything else creates.
func NewFormView(route *url.URL, users UsersAPI, nav Navigator) *FormView {
	f := &FormView{
		Mode:  ModeCreate,
		State: StateCreate,
		query: route.Query(),
		api:   users,
		nav:   nav,
	}
	if strings.Contains(route.Path, "edit") {
		f.Mode = ModeEdit
		f.State = StateEditLoading
	}
	return f
}

// TargetID returns the id of the edited user and whether it is usable, that
// is a positive integer.
func (f *FormView) TargetID() (int, bool) {
	raw := f.query.Get(EditQueryParam)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Load fetches the edited user and fills the form. Create forms have nothing
// to load. Without a usable id, or when the fetch fails or returns no user,
// the form navigates back to the list and its fields stay untouched.
func (f *FormView) Load(ctx context.Context) {
	if f.Mode != ModeEdit || f.State != StateEditLoading {
		return
	}
	log := logging.FromContext(ctx)

	id, ok := f.TargetID()
	if !ok {
		log.WithField(EditQueryParam, f.query.Get(EditQueryParam)).Warn("Edit requested without a usable user_id")
		f.leave()
		return
	}

	resp, err := f.api.Get(ctx, id)
	if err != nil {
		log.WithError(err).WithField(EditQueryParam, id).Error("Error getting user")
		f.leave()
		return
	}
	if resp == nil || resp.Data == nil {
		log.WithField(EditQueryParam, id).Error("User response carried no data")
		f.leave()
		return
	}

	f.Fields = FieldsFromUser(*resp.Data)
	f.State = StateEditReady
}

// Bind adopts values entered by the user.
func (f *FormView) Bind(fields Fields) {
	if f.State == StateDone {
		return
	}
	if f.Mode == ModeEdit {
		if _, ok := f.TargetID(); !ok {
			f.leave()
			return
		}
		f.State = StateEditReady
	}
	f.Fields = fields.trimmed()
}

// Errors reports the failed validation rules per field.
func (f *FormView) Errors() map[string]string {
	return f.Fields.Errors()
}

// CanSubmit reports whether the submit control is enabled.
func (f *FormView) CanSubmit() bool {
	if f.State != StateCreate && f.State != StateEditReady {
		return false
	}
	return f.Fields.Valid()
}

// Submit saves the form: create posts a new user, edit puts the user with
// the target id. On success the form resets and navigates to the list. A
// taken user name sets Conflict and keeps the form open.
func (f *FormView) Submit(ctx context.Context) {
	if !f.CanSubmit() {
		return
	}
	log := logging.FromContext(ctx)

	f.Conflict = ""
	f.Notice = ""
	user := f.Fields.User()
	previous := f.State
	f.State = StateSubmitting

	var err error
	switch f.Mode {
	case ModeEdit:
		id, ok := f.TargetID()
		if !ok {
			f.leave()
			return
		}
		user.UserID = id
		_, err = f.api.Update(ctx, user)
	default:
		_, err = f.api.Create(ctx, user)
	}

	if err != nil {
		f.State = previous
		if api.MessageOf(err) == ConflictMessage {
			f.Conflict = user.UserName
			return
		}
		log.WithError(err).WithField("mode", f.Mode.String()).Error("Error saving user")
		f.Notice = SubmitNotice
		return
	}

	f.nav.Navigate(RouteList, nil)
	f.Fields = Fields{}
	f.State = StateDone
}

func (f *FormView) leave() {
	f.State = StateDone
	f.nav.Navigate(RouteList, nil)
}
