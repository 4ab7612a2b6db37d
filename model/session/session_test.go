package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/webterm/webshell/internal/clock"
	"github.com/webterm/webshell/model/types"
)

func TestSessionHistory(t *testing.T) {
	frozen := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	clock.NowFunc = func() time.Time { return frozen }
	defer func() { clock.NowFunc = time.Now }()

	sess := New("/tmp")
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "/tmp", sess.Cwd)

	sess.Append(&Record{Input: "pwd", Output: "/tmp", Status: StatusOK})
	sess.Append(&Record{Input: "rm /missing", Status: StatusError, Kind: types.KindNotFound})

	history := sess.History()
	assert.Len(t, history, 2)
	assert.Equal(t, "pwd", history[0].Input)
	assert.Equal(t, frozen, history[0].At)
	assert.Equal(t, StatusError, history[1].Status)
	assert.Equal(t, []string{"pwd", "rm /missing"}, sess.Inputs())

	// mutating the returned slice must not affect the session
	history = history[:0]
	assert.Len(t, sess.History(), 2)
}

func TestChangeDir(t *testing.T) {
	sess := New("/home/user")
	sess.ChangeDir("")
	assert.Equal(t, "/home/user", sess.Cwd)
	sess.ChangeDir("/tmp")
	assert.Equal(t, "/tmp", sess.Cwd)
}
