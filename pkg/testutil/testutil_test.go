package testutil_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/autokanshi/pkg/testutil"
	"github.com/arthur-debert/autokanshi/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	assert.False(t, env.ConfigExists())

	env.WriteConfig("profile a {\n    output \"A B C\" enable\n}\n")

	assert.True(t, env.ConfigExists())
	assert.Equal(t, []string{"a"}, env.ProfileNames())
	assert.Contains(t, env.RawConfig(), "profile a")
}

func TestMockRunner(t *testing.T) {
	boom := stderrors.New("boom")
	runner := (&testutil.MockRunner{}).FailOn("bad", boom)

	require.NoError(t, runner.Shell(context.Background(), "good"))
	assert.Same(t, boom, runner.Shell(context.Background(), "bad"))
	assert.Equal(t, []string{"good", "bad"}, runner.Commands())
}

func TestMockOutputSource(t *testing.T) {
	source := &testutil.MockOutputSource{Layout: []types.Output{testutil.Laptop}}

	outputs, err := source.Outputs(context.Background())
	require.NoError(t, err)
	assert.Len(t, outputs, 1)
	assert.Equal(t, 1, source.Calls)
}
