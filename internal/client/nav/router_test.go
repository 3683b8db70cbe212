package nav

import (
	"testing"

	"github.com/dmitrijs2005/assessment/internal/client/models"
	"github.com/dmitrijs2005/assessment/internal/client/routes"
	"github.com/dmitrijs2005/assessment/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(start string) (*Router, *session.Store) {
	store := session.NewStore()
	r := New(routes.MustDefault(), store, start, nil)
	return r, store
}

func TestNavigate_ProtectedWhileAbsentRedirects(t *testing.T) {
	r, store := newRouter("/")
	store.Clear()

	r.Navigate("/feed")
	loc := r.Location()
	assert.Equal(t, "/login", loc.Path)
	assert.Equal(t, routes.Render, loc.Decision.Action)
}

func TestNavigate_ProtectedWhileUnknownIsLoading(t *testing.T) {
	r, _ := newRouter("/")

	r.Navigate("/feed")
	loc := r.Location()
	assert.Equal(t, "/feed", loc.Path)
	assert.Equal(t, routes.Loading, loc.Decision.Action)
}

func TestNavigate_PublicAlwaysRenders(t *testing.T) {
	r, store := newRouter("/")
	store.Set(models.User{FirstName: "Ada"})

	r.Navigate("/about/")
	assert.Equal(t, Location{Path: "/about", Decision: routes.Decision{Action: routes.Render}}, r.Location())
}

func TestSessionLoss_RedirectsFromProtectedView(t *testing.T) {
	r, store := newRouter("/")
	store.Set(models.User{FirstName: "Ada"})
	r.Navigate("/feed")
	require.Equal(t, "/feed", r.Location().Path)

	var seen []Location
	r.OnChange(func(l Location) { seen = append(seen, l) })

	store.Clear()
	assert.Equal(t, "/login", r.Location().Path)
	require.Len(t, seen, 1)
	assert.Equal(t, "/login", seen[0].Path)
}

func TestSessionLoss_PublicViewStays(t *testing.T) {
	r, store := newRouter("/about")
	store.Set(models.User{FirstName: "Ada"})

	store.Clear()
	assert.Equal(t, "/about", r.Location().Path)
}

func TestClose_StopsFollowingStore(t *testing.T) {
	r, store := newRouter("/")
	store.Set(models.User{FirstName: "Ada"})
	r.Navigate("/profile")
	r.Close()

	store.Clear()
	assert.Equal(t, "/profile", r.Location().Path)
	assert.Equal(t, routes.Redirect, r.Location().Decision.Action)
}

func TestHistoryAndBack(t *testing.T) {
	r, store := newRouter("/login")
	store.Set(models.User{FirstName: "Ada"})

	r.Navigate("/feed")
	r.Navigate("/feed")
	r.Navigate("/about")
	assert.Equal(t, []string{"/login", "/feed", "/about"}, r.History())

	require.True(t, r.Back())
	assert.Equal(t, "/feed", r.Location().Path)
	assert.Equal(t, []string{"/login", "/feed"}, r.History())

	require.True(t, r.Back())
	assert.False(t, r.Back())
	assert.Equal(t, "/login", r.Location().Path)
}
