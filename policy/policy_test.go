package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowed(t *testing.T) {
	var nilPolicy *Policy
	assert.True(t, nilPolicy.IsAllowed("rm"))

	p := &Policy{BlockList: []string{"rm"}}
	assert.False(t, p.IsAllowed("rm"))
	assert.False(t, p.IsAllowed("RM"))
	assert.True(t, p.IsAllowed("ls"))

	p = &Policy{AllowList: []string{"ls", "pwd"}}
	assert.True(t, p.IsAllowed("ls"))
	assert.False(t, p.IsAllowed("rm"))
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	assert.True(t, (*Policy)(nil).Approve(ctx, "rm", nil))
	assert.False(t, (&Policy{Mode: ModeDeny}).Approve(ctx, "rm", nil))
	// ask mode without an ask func cannot approve
	assert.False(t, (&Policy{Mode: ModeAsk}).Approve(ctx, "rm", nil))

	asked := false
	p := &Policy{Mode: ModeAsk, Ask: func(ctx context.Context, command string, args []string, p *Policy) bool {
		asked = true
		return command == "rm"
	}}
	assert.True(t, p.Approve(ctx, "rm", []string{"-r", "dir"}))
	assert.True(t, asked)
	assert.False(t, p.Approve(ctx, "mv", nil))
}

func TestContextRoundTrip(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
	p := &Policy{Mode: ModeDeny}
	ctx := WithPolicy(context.Background(), p)
	assert.Same(t, p, FromContext(ctx))
}

func TestConfigRoundTrip(t *testing.T) {
	p := &Policy{Mode: ModeAuto, BlockList: []string{"rm"}}
	restored := FromConfig(ToConfig(p))
	assert.Equal(t, p.Mode, restored.Mode)
	assert.Equal(t, p.BlockList, restored.BlockList)
	assert.Nil(t, ToConfig(nil))
	assert.Nil(t, FromConfig(nil))
}
