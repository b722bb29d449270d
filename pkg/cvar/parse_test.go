package cvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	c := New(VisitorFunc(func(*Builder) {}))

	tests := []struct {
		name string
		line string
		want command
	}{
		{"empty", "", command{empty: true}},
		{"whitespace only", "   \t ", command{empty: true}},
		{"bare path is a get", "width", command{verb: verbPath, path: []string{"width"}, args: []string{}}},
		{"path with value is a set", "width 120", command{verb: verbPath, path: []string{"width"}, payload: "120", args: []string{"120"}}},
		{"dotted path", "physics.gravity -9.8", command{verb: verbPath, path: []string{"physics", "gravity"}, payload: "-9.8", args: []string{"-9.8"}}},
		{"payload keeps internal whitespace", "title a  b", command{verb: verbPath, path: []string{"title"}, payload: "a  b", args: []string{"a", "b"}}},
		{"bare reset", "reset", command{verb: verbReset}},
		{"reset with path", "reset arena.width", command{verb: verbReset, path: []string{"arena", "width"}}},
		{"verbs are case-insensitive", "RESET width", command{verb: verbReset, path: []string{"width"}}},
		{"bare find", "find", command{verb: verbFind}},
		{"find with query", "find grav", command{verb: verbFind, query: "grav"}},
		{"bare help", "help", command{verb: verbHelp}},
		{"help with path", "help arena", command{verb: verbHelp, path: []string{"arena"}}},
		{"surrounding whitespace ignored", "  width 120  ", command{verb: verbPath, path: []string{"width"}, payload: "120", args: []string{"120"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.parseLine(tt.line)
			assert.Equal(t, tt.want.verb, got.verb)
			assert.Equal(t, tt.want.empty, got.empty)
			assert.Equal(t, tt.want.path, got.path)
			assert.Equal(t, tt.want.query, got.query)
			assert.Equal(t, tt.want.payload, got.payload)
			if tt.want.args != nil {
				assert.Equal(t, tt.want.args, got.args)
			}
		})
	}
}

func TestSplitToken(t *testing.T) {
	head, rest := splitToken("a b  c")
	assert.Equal(t, "a", head)
	assert.Equal(t, "b  c", rest)

	head, rest = splitToken("single")
	assert.Equal(t, "single", head)
	assert.Equal(t, "", rest)
}
