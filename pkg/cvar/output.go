package cvar

import (
	"fmt"
	"strings"
)

// lineBuffer implements Output by collecting action output into the
// ordered line slice the command returns.
type lineBuffer struct {
	lines   []string
	pending strings.Builder
}

func (b *lineBuffer) Printf(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			b.pending.WriteString(s)
			return
		}
		b.pending.WriteString(s[:i])
		b.lines = append(b.lines, b.pending.String())
		b.pending.Reset()
		s = s[i+1:]
	}
}

func (b *lineBuffer) Println(format string, args ...any) {
	b.Printf(format+"\n", args...)
}

// flush terminates any partial line and returns everything written.
func (b *lineBuffer) flush() []string {
	if b.pending.Len() > 0 {
		b.lines = append(b.lines, b.pending.String())
		b.pending.Reset()
	}
	return b.lines
}
