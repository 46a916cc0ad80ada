package cli

import (
	"context"
	"testing"

	"github.com/retroenv/fzerodec/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "car data",
			args: []string{"--car", "rom.sfc"},
			want: options.Program{
				Parameters: options.Parameters{Input: "rom.sfc"},
				Flags:      options.Flags{Car: true},
			},
		},
		{
			name: "file flag",
			args: []string{"--map", "--file", "rom.sfc"},
			want: options.Program{
				Parameters: options.Parameters{Input: "rom.sfc"},
				Flags:      options.Flags{Map: true},
			},
		},
		{
			name: "single world as json",
			args: []string{"--map", "--world", "7", "--json", "-o", "out.json", "rom.sfc"},
			want: options.Program{
				Parameters: options.Parameters{Input: "rom.sfc", Output: "out.json"},
				Flags:      options.Flags{Map: true, World: 7, JSON: true},
			},
		},
		{
			name: "everything quietly",
			args: []string{"--car", "--map", "--vehicle", "2", "-q", "rom.sfc"},
			want: options.Program{
				Parameters: options.Parameters{Input: "rom.sfc"},
				Flags:      options.Flags{Car: true, Map: true, Vehicle: 2, Quiet: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "no input", args: []string{"--car"}, errContains: "no input file"},
		{name: "no action", args: []string{"rom.sfc"}, errContains: "nothing to decode"},
		{name: "vehicle too high", args: []string{"--car", "--vehicle", "5", "rom.sfc"}, errContains: "vehicle 5 out of range"},
		{name: "negative world", args: []string{"--map", "--world", "-1", "rom.sfc"}, errContains: "world -1 out of range"},
		{name: "vehicle without car", args: []string{"--map", "--vehicle", "1", "rom.sfc"}, errContains: "--vehicle requires --car"},
		{name: "world without map", args: []string{"--car", "--world", "1", "rom.sfc"}, errContains: "--world requires --map"},
		{name: "debug and quiet", args: []string{"--car", "--debug", "-q", "rom.sfc"}, errContains: "can not be combined"},
		{name: "two files", args: []string{"--car", "a.sfc", "b.sfc"}, errContains: "accepts at most 1 arg"},
		{name: "unknown flag", args: []string{"--car", "--cars", "rom.sfc"}, errContains: "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(tt.args)
			assert.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestNewCommandPassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "value")

	var called bool
	cmd := NewCommand("1.0", func(ctx context.Context, opts options.Program) error {
		called = true
		assert.Equal(t, "value", ctx.Value(key{}))
		assert.True(t, opts.Car)
		return nil
	})
	cmd.SetArgs([]string{"--car", "rom.sfc"})

	assert.NoError(t, cmd.ExecuteContext(ctx))
	assert.True(t, called)
}

// parseArgs executes the command with the given arguments and returns the
// options passed to the run function.
func parseArgs(args []string) (options.Program, error) {
	var parsed options.Program
	cmd := NewCommand("", func(_ context.Context, opts options.Program) error {
		parsed = opts
		return nil
	})
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return options.Program{}, err
	}
	return parsed, nil
}
