package sessionctl

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/webterm/webshell/model/types"
)

func TestHelp(t *testing.T) {
	service := New(0, func() types.Signatures {
		return types.Signatures{
			{Name: "ls", Usage: "ls [path]", Description: "list directory entries"},
			{Name: "pwd", Usage: "pwd", Description: "print working directory"},
		}
	})
	executable, err := service.Command("help")
	assert.NoError(t, err)
	response, err := executable(context.Background(), &types.Request{})
	assert.NoError(t, err)
	assert.Contains(t, response.Text, "ls [path]")
	assert.Contains(t, response.Text, "host shell")
}

func TestHistory(t *testing.T) {
	service := New(3, nil)
	executable, _ := service.Command("history")

	response, err := executable(context.Background(), &types.Request{})
	assert.NoError(t, err)
	assert.Equal(t, "No command history", response.Text)

	var inputs []string
	for i := 0; i < 5; i++ {
		inputs = append(inputs, fmt.Sprintf("cmd-%d", i))
	}
	response, err = executable(context.Background(), &types.Request{History: inputs})
	assert.NoError(t, err)
	// only the last 3 entries, numbered by absolute position
	assert.Equal(t, "3: cmd-2\n4: cmd-3\n5: cmd-4", response.Text)
}

func TestClear(t *testing.T) {
	service := New(0, nil)
	executable, _ := service.Command("clear")
	response, err := executable(context.Background(), &types.Request{})
	assert.NoError(t, err)
	assert.True(t, response.Clear)
}
