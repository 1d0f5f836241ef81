package database

import (
	"testing"

	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	userRepo := newUserRepo(db.conn)

	t.Run("should insert a new user", func(t *testing.T) {
		user := &entity.User{
			SlackUserID: "U123456789",
			Name:        "alice",
			DisplayName: "Alice",
			DateOfBirth: "1.3.2000",
		}

		err := userRepo.Upsert(user)

		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.Equal(t, "alice", user.Name)
		assert.Equal(t, "1.3.2000", user.DateOfBirth)
		assert.Empty(t, user.DateOfFwd)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("should refresh names and keep stored dates", func(t *testing.T) {
		user := &entity.User{
			SlackUserID: "U123456789",
			Name:        "alice.smith",
			DisplayName: "Alice Smith",
		}

		err := userRepo.Upsert(user)

		require.NoError(t, err)
		assert.Equal(t, "alice.smith", user.Name)
		assert.Equal(t, "Alice Smith", user.DisplayName)
		assert.Equal(t, "1.3.2000", user.DateOfBirth)

		users, err := userRepo.List()
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestUserRepo_Get(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	userRepo := newUserRepo(db.conn)

	alice := &entity.User{SlackUserID: "U1", Name: "Alice"}
	require.NoError(t, userRepo.Upsert(alice))

	t.Run("should get user by id", func(t *testing.T) {
		user, err := userRepo.GetByID(alice.ID)

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "U1", user.SlackUserID)
	})

	t.Run("should get user by slack id", func(t *testing.T) {
		user, err := userRepo.GetBySlackID("U1")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alice.ID, user.ID)
	})

	t.Run("should get user by exact name", func(t *testing.T) {
		user, err := userRepo.GetByName("Alice")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alice.ID, user.ID)

		user, err = userRepo.GetByName("alice")

		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("should return nil when user does not exist", func(t *testing.T) {
		user, err := userRepo.GetBySlackID("U404")

		require.NoError(t, err)
		assert.Nil(t, user)

		user, err = userRepo.GetByID(404)

		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepo_FindByFuzzyName(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	userRepo := newUserRepo(db.conn)

	for _, user := range []*entity.User{
		{SlackUserID: "U1", Name: "ann"},
		{SlackUserID: "U2", Name: "anna"},
		{SlackUserID: "U3", Name: "annette"},
		{SlackUserID: "U4", Name: "bob_ross"},
		{SlackUserID: "U5", Name: "bobby"},
		{SlackUserID: "U6", Name: "Иван"},
		{SlackUserID: "U7", Name: "Ивонна"},
	} {
		require.NoError(t, userRepo.Upsert(user))
	}

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "exact match wins", query: "ann", expected: []string{"ann"}},
		{name: "exact match ignores case", query: "ANNA", expected: []string{"anna"}},
		{name: "prefix matches every candidate", query: "anne", expected: []string{"annette"}},
		{name: "prefix with several candidates", query: "bo", expected: []string{"bob_ross", "bobby"}},
		{name: "underscore is not a wildcard", query: "bob_", expected: []string{"bob_ross"}},
		{name: "exact cyrillic match", query: "Иван", expected: []string{"Иван"}},
		{name: "cyrillic match ignores case", query: "ИВАН", expected: []string{"Иван"}},
		{name: "cyrillic prefix", query: "ив", expected: []string{"Иван", "Ивонна"}},
		{name: "no match", query: "carol", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := userRepo.FindByFuzzyName(tt.query)

			require.NoError(t, err)
			var names []string
			for _, user := range users {
				names = append(names, user.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestUserRepo_SetDates(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	userRepo := newUserRepo(db.conn)

	user := &entity.User{SlackUserID: "U1", Name: "alice"}
	require.NoError(t, userRepo.Upsert(user))

	t.Run("should set date of birth and date of joining", func(t *testing.T) {
		require.NoError(t, userRepo.SetDateOfBirth(user.ID, "15.6.1995"))
		require.NoError(t, userRepo.SetDateOfFwd(user.ID, "1.9.2019"))

		stored, err := userRepo.GetByID(user.ID)

		require.NoError(t, err)
		assert.Equal(t, "15.6.1995", stored.DateOfBirth)
		assert.Equal(t, "1.9.2019", stored.DateOfFwd)
	})

	t.Run("should clear a date with an empty value", func(t *testing.T) {
		require.NoError(t, userRepo.SetDateOfBirth(user.ID, ""))

		stored, err := userRepo.GetByID(user.ID)

		require.NoError(t, err)
		assert.Empty(t, stored.DateOfBirth)
		assert.Equal(t, "1.9.2019", stored.DateOfFwd)
	})
}
