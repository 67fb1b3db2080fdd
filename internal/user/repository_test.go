package user

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyanbakery/storefront/pkg/kvstore"
)

type stubConfirm bool

func (s stubConfirm) Confirm(string) bool { return bool(s) }

func newTestRepo() Repository {
	repo := NewRepository(kvstore.NewMemory(), func() []User { return Seed("Admin", "admin@gyan.com") })
	repo.Create(User{Name: "Priya", Email: "priya@example.com", Wallet: 150})
	repo.Create(User{Name: "Rahul", Email: "rahul@example.com"})
	return repo
}

func TestDelete_RemovesExactlyOneKeepingOrder(t *testing.T) {
	repo := newTestRepo()

	require.NoError(t, repo.Delete("priya@example.com"))

	users := repo.List()
	require.Len(t, users, 2)
	assert.Equal(t, "admin@gyan.com", users[0].Email)
	assert.Equal(t, "rahul@example.com", users[1].Email)
}

func TestDelete_AdminProtected(t *testing.T) {
	repo := newTestRepo()

	err := repo.Delete("admin@gyan.com")
	assert.ErrorIs(t, err, ErrAdminProtected)
	assert.Len(t, repo.List(), 3)
}

func TestDelete_UnknownUser(t *testing.T) {
	repo := newTestRepo()
	assert.Error(t, repo.Delete("ghost@example.com"))
}

func TestCreate_RejectsDuplicateEmail(t *testing.T) {
	repo := newTestRepo()

	err := repo.Create(User{Name: "Other", Email: "priya@example.com"})
	assert.Error(t, err)

	u, ok := repo.FindByEmail("priya@example.com")
	require.True(t, ok)
	assert.Equal(t, "Priya", u.Name)
	assert.Equal(t, RoleCustomer, u.Role)
}

func TestCredit(t *testing.T) {
	repo := newTestRepo()

	require.NoError(t, repo.Credit("priya@example.com", 100))

	u, ok := repo.FindByEmail("priya@example.com")
	require.True(t, ok)
	assert.Equal(t, 250, u.Wallet)

	assert.Error(t, repo.Credit("ghost@example.com", 10))
}

func TestController_Delete(t *testing.T) {
	repo := newTestRepo()
	log := logrus.NewEntry(logrus.New())

	// admin stays protected even when the prompt is answered yes
	ctl := NewController(repo, stubConfirm(true), log)
	assert.ErrorIs(t, ctl.Delete("admin@gyan.com"), ErrAdminProtected)

	// a declined prompt leaves everything untouched
	declined := NewController(repo, stubConfirm(false), log)
	require.NoError(t, declined.Delete("priya@example.com"))
	assert.Len(t, repo.List(), 3)

	require.NoError(t, ctl.Delete("priya@example.com"))
	assert.Len(t, repo.List(), 2)
}

func TestController_ListFormatsWallet(t *testing.T) {
	repo := newTestRepo()
	ctl := NewController(repo, stubConfirm(true), logrus.NewEntry(logrus.New()))

	rows := ctl.List()
	require.Len(t, rows, 3)
	assert.Equal(t, "admin", rows[0].Role)
	assert.Equal(t, "₹150", rows[1].Wallet)
	assert.Equal(t, "customer", rows[2].Role)
}
