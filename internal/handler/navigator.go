package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// redirectNavigator turns view navigation into a See Other redirect.
type redirectNavigator struct {
	current string
	target  string
}

func newRedirectNavigator(current string) *redirectNavigator {
	return &redirectNavigator{current: current}
}

func (n *redirectNavigator) Navigate(path string, query url.Values) {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	n.target = path
}

func (n *redirectNavigator) Reload() {
	n.target = n.current
}

// redirect answers with the recorded target. It reports false when the view
// did not navigate.
func (n *redirectNavigator) redirect(c echo.Context) (bool, error) {
	if n.target == "" {
		return false, nil
	}
	return true, c.Redirect(http.StatusSeeOther, n.target)
}
