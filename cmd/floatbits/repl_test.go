package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/floatbits"
)

func newTestSession(t *testing.T, l floatbits.Layout) *session {
	log := logrus.New()
	log.SetOutput(io.Discard)
	s, err := newSession(l, log, false)
	require.NoError(t, err)
	return s
}

func TestSessionExec(t *testing.T) {
	a := assert.New(t)
	s := newTestSession(t, floatbits.Binary64)
	tests := []struct {
		line  string
		bits  string
		value string
		err   string
	}{
		{"layout binary16", "0 00000 0000000000", "0.0", ""},
		{"toggle 2", "0 01000 0000000000", "0.0078125", ""},
		{"toggle 3", "0 01100 0000000000", "0.125", ""},
		{"set 4 1", "0 01110 0000000000", "0.5", ""},
		{"set 5 1", "0 01111 0000000000", "1.0", ""},
		{"set 1 0", "0 01111 0000000000", "1.0", ""},
		{"toggle 0", "1 01111 0000000000", "-1.0", ""},
		{"toggle 100", "1 01111 0000000000", "-1.0", ""},
		{"toggle -1", "1 01111 0000000000", "-1.0", ""},
		{"exp 4", "1 0111 0000000000", "-1.0", ""},
		{"sig 1", "1 0111 0", "-1.0", ""},
		{"toggle 5", "1 0111 1", "-1.5", ""},
		{"reset", "0 0000 0", "0.0", ""},
		{"exp 40", "0 00000000000 0", "0.0", ""},
		{"exp 0", "0 0 0", "0.0", ""},
		{"toggle 1", "0 1 0", "+Inf", ""},
		{"toggle 2", "0 1 1", "NaN", ""},
		{"exp 2", "0 10 1", "3.0", ""},
		{"sig 0", "0 10 1", "3.0", ""},
		{"", "", "", ""},
		{"toggle", "", "", "toggle needs 1 argument(s), got 0"},
		{"toggle x", "", "", `bad index "x": strconv.Atoi: parsing "x": invalid syntax`},
		{"set 1 2", "", "", `bad bit value "2", must be 0 or 1`},
		{"exp five", "", "", `bad width "five": strconv.Atoi: parsing "five": invalid syntax`},
		{"layout binary128", "", "", `unknown layout "binary128"`},
		{"flip 1", "", "", `unknown command "flip", try help`},
		{"reset now", "", "", "reset needs 0 argument(s), got 1"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var out bytes.Buffer
			quit, err := s.exec(test.line, &out)
			a.False(quit)
			if len(test.err) > 0 {
				a.EqualError(err, test.err)
				return
			}
			require.NoError(t, err)
			a.Equal(test.bits, field(out.String(), "bits"))
			a.Equal(test.value, field(out.String(), "value"))
		})
	}
}

func TestSessionRun(t *testing.T) {
	a := assert.New(t)
	s := newTestSession(t, floatbits.E4M3)
	in := strings.NewReader("toggle 2\nbogus\ntoggle 3\ntoggle 4\nquit\ntoggle 0\n")
	var out bytes.Buffer
	require.NoError(t, s.run(in, &out))
	a.Equal("0 0111 000", lastField(out.String(), "bits"))
	a.Equal("1.0", lastField(out.String(), "value"))
	a.Contains(out.String(), `error: unknown command "bogus", try help`)
	a.False(s.field.Sign())
}

func TestSessionHelpAndQuit(t *testing.T) {
	a := assert.New(t)
	s := newTestSession(t, floatbits.E5M2)
	var out bytes.Buffer
	quit, err := s.exec("help", &out)
	a.NoError(err)
	a.False(quit)
	a.Equal(replHelp, out.String())
	quit, err = s.exec("exit", &out)
	a.NoError(err)
	a.True(quit)
}

func TestReplCmd(t *testing.T) {
	a := assert.New(t)
	out, err := runCmd(t, "toggle 0\n", "repl", "--layout", "bfloat16")
	require.NoError(t, err)
	a.Equal("0 00000000 0000000", field(out, "bits"))
	a.Equal("1 00000000 0000000", lastField(out, "bits"))
	a.Equal("-0.0", lastField(out, "value"))
	a.Equal("-0", lastField(out, "exact"))
}
