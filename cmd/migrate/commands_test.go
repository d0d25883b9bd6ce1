package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "steps", "version", "force", "seed"}, names)
}

// The argument errors below are returned before any configuration is read
// or any database connection is attempted.
func TestRootCommand_RejectsBadArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "steps needs an argument", args: []string{"steps"}, msg: "accepts 1 arg"},
		{name: "steps must be numeric", args: []string{"steps", "two"}, msg: "steps must be a non-zero integer"},
		{name: "steps must be non-zero", args: []string{"steps", "0"}, msg: "steps must be a non-zero integer"},
		{name: "force rejects negatives", args: []string{"force", "-1"}, msg: "unknown shorthand flag"},
		{name: "force must be numeric", args: []string{"force", "x"}, msg: "version must be a non-negative integer"},
		{name: "up takes no arguments", args: []string{"up", "now"}, msg: "unknown command"},
		{name: "unknown dataset", args: []string{"seed", "--dataset", "production"}, msg: `unknown dataset "production"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(tt.args)
			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestSeedCommand_DefaultDataset(t *testing.T) {
	root := newRootCmd()
	seedCmd, _, err := root.Find([]string{"seed"})
	require.NoError(t, err)

	flag := seedCmd.Flags().Lookup("dataset")
	require.NotNil(t, flag)
	assert.Equal(t, "development", flag.DefValue)
}
