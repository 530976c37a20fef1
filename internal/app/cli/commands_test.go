package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Options
	}{
		{name: "no args starts the tui", args: []string{}, expected: Options{Type: CommandRun}},
		{name: "view flag", args: []string{"--view", "skills"}, expected: Options{Type: CommandRun, View: "skills"}},
		{name: "no-ui", args: []string{"--no-ui"}, expected: Options{Type: CommandRun, NoUI: true}},
		{name: "no-ui with view", args: []string{"--no-ui", "--view=contact"}, expected: Options{Type: CommandRun, View: "contact", NoUI: true}},
		{name: "render without view", args: []string{"render"}, expected: Options{Type: CommandRender}},
		{name: "render with view", args: []string{"render", "projects"}, expected: Options{Type: CommandRender, View: "projects"}},
		{name: "render alias", args: []string{"r", "about"}, expected: Options{Type: CommandRender, View: "about"}},
		{name: "render with no-ui after", args: []string{"render", "about", "--no-ui"}, expected: Options{Type: CommandRender, View: "about", NoUI: true}},
		{name: "init", args: []string{"init"}, expected: Options{Type: CommandInit}},
		{name: "init alias", args: []string{"i"}, expected: Options{Type: CommandInit}},
		{name: "init force", args: []string{"init", "--force"}, expected: Options{Type: CommandInit, Force: true}},
		{name: "init short force", args: []string{"init", "-f"}, expected: Options{Type: CommandInit, Force: true}},
		{name: "init dry run", args: []string{"init", "--dry-run"}, expected: Options{Type: CommandInit, DryRun: true}},
		{name: "version command", args: []string{"version"}, expected: Options{Type: CommandVersion}},
		{name: "version flag", args: []string{"--version"}, expected: Options{Type: CommandVersion}},
		{name: "version short flag", args: []string{"-v"}, expected: Options{Type: CommandVersion}},
		{name: "help command", args: []string{"help"}, expected: Options{Type: CommandHelp}},
		{name: "help flag", args: []string{"--help"}, expected: Options{Type: CommandHelp}},
		{name: "help short flag", args: []string{"-h"}, expected: Options{Type: CommandHelp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, *opts)
		})
	}
}

func Test_Parse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown command", args: []string{"deploy"}},
		{name: "unknown flag", args: []string{"--verbose"}},
		{name: "render with two views", args: []string{"render", "home", "about"}},
		{name: "init with args", args: []string{"init", "extra"}},
		{name: "version with args", args: []string{"version", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Parse(tt.args)

			assert.Error(t, err)
			assert.Nil(t, opts)
		})
	}
}

func Test_CommandType_String(t *testing.T) {
	tests := []struct {
		command  CommandType
		expected string
	}{
		{command: CommandRun, expected: "run"},
		{command: CommandRender, expected: "render"},
		{command: CommandInit, expected: "init"},
		{command: CommandVersion, expected: "version"},
		{command: CommandHelp, expected: "help"},
		{command: CommandType(99), expected: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.command.String())
		})
	}
}
