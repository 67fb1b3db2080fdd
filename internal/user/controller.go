package user

import (
	"github.com/sirupsen/logrus"

	"github.com/gyanbakery/storefront/pkg/money"
)

type Confirmer interface {
	Confirm(prompt string) bool
}

// Row is the admin table view of one user.
type Row struct {
	Name   string
	Email  string
	Role   string
	Wallet string
}

type Controller struct {
	repo    Repository
	confirm Confirmer
	log     *logrus.Entry
}

func NewController(repo Repository, confirm Confirmer, log *logrus.Entry) *Controller {
	return &Controller{
		repo:    repo,
		confirm: confirm,
		log:     log,
	}
}

func (c *Controller) List() []Row {
	users := c.repo.List()
	rows := make([]Row, 0, len(users))
	for _, u := range users {
		role := u.Role
		if role == "" {
			role = RoleCustomer
		}
		rows = append(rows, Row{
			Name:   u.Name,
			Email:  u.Email,
			Role:   role,
			Wallet: money.Format(u.Wallet),
		})
	}
	return rows
}

func (c *Controller) Delete(email string) error {
	if !c.confirm.Confirm("Delete this user?") {
		return nil
	}
	err := c.repo.Delete(email)
	if err != nil {
		c.log.Debugf("Delete: %s - %v", email, err)
	}
	return err
}
