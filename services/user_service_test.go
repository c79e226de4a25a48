package services

import (
	"testing"

	"table-tap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_SeedsAdmin(t *testing.T) {
	users := NewUserService()

	admin, ok := users.FindByEmail("admin@tabletap.local")
	require.True(t, ok)
	assert.Equal(t, "admin", admin.Role)
	assert.Equal(t, 1, admin.ID)
}

func TestUserService_Create(t *testing.T) {
	users := NewUserService()

	user, err := users.Create(models.User{Email: "jane@example.com", Role: "customer", FirstName: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)

	found, err := users.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", found.Email)
}

func TestUserService_Create_DuplicateEmailCaseInsensitive(t *testing.T) {
	users := NewUserService()

	_, err := users.Create(models.User{Email: "jane@example.com"})
	require.NoError(t, err)

	_, err = users.Create(models.User{Email: "Jane@Example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Update(t *testing.T) {
	users := NewUserService()
	created, err := users.Create(models.User{Email: "jane@example.com", Role: "customer", FirstName: "Jane"})
	require.NoError(t, err)

	updated, err := users.Update(created.ID, models.UpdateUserRequest{Role: "staff", Department: "Kitchen", Position: "Chef"})
	require.NoError(t, err)
	assert.Equal(t, "staff", updated.Role)
	assert.Equal(t, "Kitchen", updated.Department)
	assert.Equal(t, "Chef", updated.Position)
	assert.Equal(t, "Jane", updated.FirstName)
}

func TestUserService_Update_EmailCollision(t *testing.T) {
	users := NewUserService()
	_, err := users.Create(models.User{Email: "jane@example.com"})
	require.NoError(t, err)
	second, err := users.Create(models.User{Email: "john@example.com"})
	require.NoError(t, err)

	_, err = users.Update(second.ID, models.UpdateUserRequest{Email: "jane@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Delete(t *testing.T) {
	users := NewUserService()
	created, err := users.Create(models.User{Email: "jane@example.com"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(created.ID))

	_, err = users.FindByID(created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, users.Delete(created.ID), ErrUserNotFound)
}

func TestUserService_List_SortedByID(t *testing.T) {
	users := NewUserService()
	_, err := users.Create(models.User{Email: "jane@example.com"})
	require.NoError(t, err)
	_, err = users.Create(models.User{Email: "john@example.com"})
	require.NoError(t, err)

	list := users.List()
	require.Len(t, list, 3)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, 2, list[1].ID)
	assert.Equal(t, 3, list[2].ID)
}
