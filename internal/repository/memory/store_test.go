package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celebrity-connect/internal/domain"
	"celebrity-connect/internal/repository"
	"celebrity-connect/internal/repository/memory"
)

func newUser(username string) *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		Role:     string(domain.RoleUser),
	}
}

func seedCelebrity(t *testing.T, repos *repository.Repositories, name, username string) *domain.Celebrity {
	t.Helper()

	owner := &domain.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		Role:     string(domain.RoleCelebrity),
	}
	celebrity := &domain.Celebrity{
		ID:                  uuid.New(),
		UserID:              owner.ID,
		Name:                name,
		Bio:                 "bio for " + name,
		Category:            "music",
		AvailableForBooking: true,
	}
	require.NoError(t, repos.Celebrity.CreateWithUser(context.Background(), celebrity, owner))
	return celebrity
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	alice := newUser("alice")
	require.NoError(t, repos.User.Create(ctx, alice))

	t.Run("GetByID", func(t *testing.T) {
		found, err := repos.User.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "alice", found.Username)
		assert.False(t, found.CreatedAt.IsZero())
	})

	t.Run("GetByUsername", func(t *testing.T) {
		found, err := repos.User.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, alice.ID, found.ID)
	})

	t.Run("Missing user yields nil without error", func(t *testing.T) {
		found, err := repos.User.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Duplicate username rejected", func(t *testing.T) {
		dup := newUser("alice")
		dup.Email = "other@example.com"
		assert.Error(t, repos.User.Create(ctx, dup))
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		dup := newUser("alice2")
		dup.Email = "alice@example.com"
		assert.Error(t, repos.User.Create(ctx, dup))
	})
}

func TestCelebrityRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	bob := seedCelebrity(t, repos, "Bob Star", "bobstar")
	seedCelebrity(t, repos, "Ada Lovelace", "adal")

	// Make Ada unavailable.
	ada, err := repos.Celebrity.GetByUserID(ctx, mustOwner(t, repos, "adal"))
	require.NoError(t, err)
	ada.AvailableForBooking = false
	require.NoError(t, repos.Celebrity.Update(ctx, ada))

	t.Run("Search is case-insensitive substring", func(t *testing.T) {
		found, err := repos.Celebrity.List(ctx, domain.CelebrityFilter{Search: "bob"})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, bob.ID, found[0].ID)
	})

	t.Run("Available filter", func(t *testing.T) {
		found, err := repos.Celebrity.List(ctx, domain.CelebrityFilter{AvailableOnly: true})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Bob Star", found[0].Name)
	})

	t.Run("Owner fields are joined", func(t *testing.T) {
		found, err := repos.Celebrity.GetByID(ctx, bob.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		require.NotNil(t, found.OwnerUsername)
		assert.Equal(t, "bobstar", *found.OwnerUsername)
	})
}

func mustOwner(t *testing.T, repos *repository.Repositories, username string) uuid.UUID {
	t.Helper()
	owner, err := repos.User.GetByUsername(context.Background(), username)
	require.NoError(t, err)
	require.NotNil(t, owner)
	return owner.ID
}

func TestCelebrityRepository_DeleteCascade(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	alice := newUser("alice")
	require.NoError(t, repos.User.Create(ctx, alice))
	bob := seedCelebrity(t, repos, "Bob Star", "bobstar")

	celebrityID := bob.ID
	require.NoError(t, repos.Appointment.Create(ctx, &domain.Appointment{
		ID:          uuid.New(),
		UserID:      alice.ID,
		CelebrityID: &celebrityID,
		Purpose:     "meet",
		Status:      domain.AppointmentPending,
	}))
	require.NoError(t, repos.Message.Create(ctx, &domain.Message{
		ID:          uuid.New(),
		SenderID:    alice.ID,
		ReceiverID:  bob.UserID,
		CelebrityID: &celebrityID,
		Content:     "Hi Bob",
	}))

	result, err := repos.Celebrity.DeleteCascade(ctx, bob.ID, bob.UserID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Appointments)
	assert.Equal(t, int64(1), result.Messages)
	assert.Equal(t, int64(1), result.Celebrities)
	assert.Equal(t, int64(1), result.Users)

	gone, err := repos.Celebrity.GetByID(ctx, bob.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	// Alice and her account survive; only rows touching Bob are gone.
	still, err := repos.User.GetByID(ctx, alice.ID)
	assert.NoError(t, err)
	assert.NotNil(t, still)
}

func TestUserRepository_DeleteAccountCascade(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	alice := newUser("alice")
	require.NoError(t, repos.User.Create(ctx, alice))
	bob := seedCelebrity(t, repos, "Bob Star", "bobstar")

	celebrityID := bob.ID
	require.NoError(t, repos.Appointment.Create(ctx, &domain.Appointment{
		ID:          uuid.New(),
		UserID:      alice.ID,
		CelebrityID: &celebrityID,
		Purpose:     "meet",
		Status:      domain.AppointmentPending,
	}))
	require.NoError(t, repos.Notification.Create(ctx, &domain.Notification{
		ID:     uuid.New(),
		UserID: alice.ID,
		Type:   domain.NotifWelcome,
		Title:  "Welcome",
	}))

	result, err := repos.User.DeleteAccountCascade(ctx, alice.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Appointments)
	assert.Equal(t, int64(1), result.Notifications)
	assert.Equal(t, int64(1), result.Users)
	assert.Equal(t, int64(0), result.Celebrities)

	gone, err := repos.User.GetByID(ctx, alice.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	// Bob's profile is untouched.
	kept, err := repos.Celebrity.GetByID(ctx, bob.ID)
	assert.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestAppointmentRepository_StatusUpdates(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	alice := newUser("alice")
	require.NoError(t, repos.User.Create(ctx, alice))

	appt := &domain.Appointment{
		ID:      uuid.New(),
		UserID:  alice.ID,
		Purpose: "interview",
		Status:  domain.AppointmentPending,
	}
	require.NoError(t, repos.Appointment.Create(ctx, appt))

	require.NoError(t, repos.Appointment.UpdateStatus(ctx, appt.ID, domain.AppointmentApproved))

	found, err := repos.Appointment.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.AppointmentApproved, found.Status)

	assert.Error(t, repos.Appointment.UpdateStatus(ctx, uuid.New(), domain.AppointmentApproved))

	counts, err := repos.Appointment.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[domain.AppointmentApproved])
}

func TestMessageRepository_ConversationRead(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	alice := newUser("alice")
	require.NoError(t, repos.User.Create(ctx, alice))
	bob := seedCelebrity(t, repos, "Bob Star", "bobstar")

	celebrityID := bob.ID
	for i := 0; i < 3; i++ {
		require.NoError(t, repos.Message.Create(ctx, &domain.Message{
			ID:          uuid.New(),
			SenderID:    bob.UserID,
			ReceiverID:  alice.ID,
			CelebrityID: &celebrityID,
			Content:     "reply",
		}))
	}

	marked, err := repos.Message.MarkConversationRead(ctx, alice.ID, bob.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), marked)

	// A second pass has nothing left to mark.
	marked, err = repos.Message.MarkConversationRead(ctx, alice.ID, bob.UserID)
	require.NoError(t, err)
	assert.Zero(t, marked)

	messages, err := repos.Message.ListForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for _, m := range messages {
		assert.True(t, m.IsRead)
	}
}

func TestNotificationRepository_UnreadTracking(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	alice := newUser("alice")
	require.NoError(t, repos.User.Create(ctx, alice))

	var first uuid.UUID
	for i := 0; i < 3; i++ {
		notif := &domain.Notification{
			ID:     uuid.New(),
			UserID: alice.ID,
			Type:   domain.NotifWelcome,
			Title:  "Welcome",
		}
		require.NoError(t, repos.Notification.Create(ctx, notif))
		if i == 0 {
			first = notif.ID
		}
	}

	count, err := repos.Notification.CountUnread(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	require.NoError(t, repos.Notification.MarkAsRead(ctx, first))
	count, err = repos.Notification.CountUnread(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, repos.Notification.MarkAllAsRead(ctx, alice.ID))
	count, err = repos.Notification.CountUnread(ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	unread, _, err := repos.Notification.ListByUser(ctx, alice.ID, true, domain.DefaultPagination())
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestSessionRepository_RevokeSemantics(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	userID := uuid.New()
	session := &repository.Session{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "hash-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repos.Session.Create(ctx, session))

	found, err := repos.Session.GetByTokenHash(ctx, "hash-1")
	require.NoError(t, err)
	require.NotNil(t, found)

	require.NoError(t, repos.Session.Revoke(ctx, session.ID))

	found, err = repos.Session.GetByTokenHash(ctx, "hash-1")
	assert.NoError(t, err)
	assert.Nil(t, found)
}
