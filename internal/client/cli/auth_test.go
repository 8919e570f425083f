package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/dmitrijs2005/moodiary/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_StoresSessionAndOpensCalendar(t *testing.T) {
	ta := newTestApp(t)
	ta.be.AddUser("alice", "alice@example.com", "secret1")
	ta.feed("alice@example.com", "secret1")

	require.NoError(t, ta.Login(context.Background()))

	sess, err := ta.store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, sess.Authenticated())
	assert.Equal(t, "alice", sess.User.Name)
	assert.Equal(t, session.ViewCalendar, ta.router.Current())
	assert.Contains(t, ta.output(), "Welcome, alice!")
	assert.Equal(t, "(alice calendar)", ta.status(context.Background()))
}

func TestLogin_WrongPassword(t *testing.T) {
	ta := newTestApp(t)
	ta.be.AddUser("alice", "alice@example.com", "secret1")
	ta.feed("alice@example.com", "nope")

	err := ta.Login(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, "Invalid email or password.", describeError("login", err))
	assert.Equal(t, session.ViewLogin, ta.router.Current())
	assert.False(t, ta.isLoggedIn(context.Background()))
}

func TestLogin_InvalidEmailNeverCallsBackend(t *testing.T) {
	ta := newTestApp(t)
	ta.feed("not-an-email", "secret1")

	err := ta.Login(context.Background())
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, describeError("login", err), "email")
	assert.Empty(t, ta.be.Requests())
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ta := newTestApp(t)
		ta.feed("mina", "mina@example.com", "secret1", "secret1")

		require.NoError(t, ta.Register(context.Background()))
		assert.True(t, ta.be.HasUser("mina@example.com"))
		assert.Equal(t, session.ViewLogin, ta.router.Current())
		assert.Contains(t, ta.output(), "Account created")
	})

	t.Run("password mismatch", func(t *testing.T) {
		ta := newTestApp(t)
		ta.feed("mina", "mina@example.com", "secret1", "secret2")

		err := ta.Register(context.Background())
		require.ErrorIs(t, err, common.ErrValidation)
		assert.False(t, ta.be.HasUser("mina@example.com"))
		assert.Equal(t, session.ViewRegister, ta.router.Current())
	})

	t.Run("duplicate e-mail", func(t *testing.T) {
		ta := newTestApp(t)
		ta.be.AddUser("mina", "mina@example.com", "secret1")
		ta.feed("mina2", "mina@example.com", "secret1", "secret1")

		err := ta.Register(context.Background())
		require.ErrorIs(t, err, common.ErrRejected)
		assert.Equal(t, "이미 등록된 이메일입니다.", describeError("register", err))
	})
}

func TestLogout(t *testing.T) {
	ta := newTestApp(t)
	ta.signIn(t)

	require.NoError(t, ta.Logout(context.Background()))
	assert.False(t, ta.isLoggedIn(context.Background()))
	assert.Equal(t, session.ViewLogin, ta.router.Current())
	assert.Equal(t, "(login)", ta.status(context.Background()))
}
