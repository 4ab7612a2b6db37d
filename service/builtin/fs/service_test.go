package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webterm/webshell/model/types"
)

func run(t *testing.T, service *Service, cwd, command string, args ...string) (*types.Response, error) {
	t.Helper()
	executable, err := service.Command(command)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return executable(context.Background(), &types.Request{Args: args, Cwd: cwd})
}

func TestPwdAndCd(t *testing.T) {
	service := New()
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	assert.NoError(t, os.Mkdir(sub, 0o755))
	aFile := filepath.Join(root, "plain.txt")
	assert.NoError(t, os.WriteFile(aFile, []byte("x"), 0o644))

	response, err := run(t, service, root, "pwd")
	assert.NoError(t, err)
	assert.Equal(t, root, response.Text)

	response, err = run(t, service, root, "cd", "sub")
	assert.NoError(t, err)
	assert.Equal(t, sub, response.NewCwd)

	_, err = run(t, service, root, "cd", "missing")
	assert.True(t, types.IsKind(err, types.KindNotFound))

	_, err = run(t, service, root, "cd", "plain.txt")
	assert.True(t, types.IsKind(err, types.KindNotADirectory))
}

func TestList(t *testing.T) {
	service := New()
	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("bb"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	assert.NoError(t, os.Mkdir(filepath.Join(root, "zdir"), 0o755))

	response, err := run(t, service, root, "ls")
	assert.NoError(t, err)
	assert.Regexp(t, `(?s)a\.txt.*b\.txt.*zdir`, response.Text)
	assert.Contains(t, response.Text, "dir")
	assert.Contains(t, response.Text, "file")

	_, err = run(t, service, root, "ls", "missing")
	assert.True(t, types.IsKind(err, types.KindNotFound))
}

func TestMkdirRmRoundTrip(t *testing.T) {
	service := New()
	root := t.TempDir()

	before, err := run(t, service, root, "ls")
	assert.NoError(t, err)

	_, err = run(t, service, root, "mkdir", "d")
	assert.NoError(t, err)

	_, err = run(t, service, root, "mkdir", "d")
	assert.True(t, types.IsKind(err, types.KindAlreadyExists))

	_, err = run(t, service, root, "mkdir", "no/parent/here")
	assert.True(t, types.IsKind(err, types.KindNotFound))

	// a directory needs the explicit recursive flag
	_, err = run(t, service, root, "rm", "d")
	assert.True(t, types.IsKind(err, types.KindIsADirectory))

	_, err = run(t, service, root, "rm", "-r", "d")
	assert.NoError(t, err)

	after, err := run(t, service, root, "ls")
	assert.NoError(t, err)
	assert.Equal(t, before.Text, after.Text)
}

func TestRmMissing(t *testing.T) {
	service := New()
	root := t.TempDir()
	_, err := run(t, service, root, "rm", "nonexistent")
	assert.True(t, types.IsKind(err, types.KindNotFound))
}

func TestCopyAndMove(t *testing.T) {
	service := New()
	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, "src.txt"), []byte("payload"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(root, "taken.txt"), []byte("old"), 0o644))

	_, err := run(t, service, root, "cp", "missing.txt", "dst.txt")
	assert.True(t, types.IsKind(err, types.KindNotFound))

	// destination collision is not silently overwritten
	_, err = run(t, service, root, "cp", "src.txt", "taken.txt")
	assert.True(t, types.IsKind(err, types.KindAlreadyExists))

	_, err = run(t, service, root, "cp", "-f", "src.txt", "taken.txt")
	assert.NoError(t, err)
	data, _ := os.ReadFile(filepath.Join(root, "taken.txt"))
	assert.Equal(t, "payload", string(data))

	_, err = run(t, service, root, "mv", "src.txt", "renamed.txt")
	assert.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(root, "src.txt"))
	assert.FileExists(t, filepath.Join(root, "renamed.txt"))

	assert.NoError(t, os.WriteFile(filepath.Join(root, "occupied.txt"), []byte("old"), 0o644))
	_, err = run(t, service, root, "mv", "renamed.txt", "occupied.txt")
	assert.True(t, types.IsKind(err, types.KindAlreadyExists))

	_, err = run(t, service, root, "mv", "-f", "renamed.txt", "occupied.txt")
	assert.NoError(t, err)
	data, _ = os.ReadFile(filepath.Join(root, "occupied.txt"))
	assert.Equal(t, "payload", string(data))
}

func TestCatAndTouch(t *testing.T) {
	service := New()
	root := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(root, "note.txt"), []byte("hello\n"), 0o644))

	response, err := run(t, service, root, "cat", "note.txt")
	assert.NoError(t, err)
	assert.Equal(t, "hello\n", response.Text)

	_, err = run(t, service, root, "cat", ".")
	assert.True(t, types.IsKind(err, types.KindIsADirectory))

	_, err = run(t, service, root, "touch", "fresh.txt")
	assert.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "fresh.txt"))
}

func TestUsageErrors(t *testing.T) {
	service := New()
	root := t.TempDir()
	for _, command := range []string{"mkdir", "rm", "cat", "touch"} {
		_, err := run(t, service, root, command)
		assert.True(t, types.IsKind(err, types.KindParse), command)
	}
	_, err := run(t, service, root, "cp", "only-one")
	assert.True(t, types.IsKind(err, types.KindParse))
}
