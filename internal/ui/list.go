package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/userdb/internal/models"
)

var _ list.Item = userItem{}

// userItem wraps [models.User] to implement [list.Item].
type userItem struct {
	user *models.User
}

func (i userItem) FilterValue() string { return i.user.Email }
func (i userItem) Title() string       { return i.user.Name }
func (i userItem) Description() string {
	return fmt.Sprintf("#%d • %s • created %s", i.user.ID, i.user.Email, i.user.CreatedAt)
}
