package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/avdva/floatbits"
	"github.com/avdva/floatbits/internal/mathutil"
)

const replHelp = `commands:
	exp N        set the number of exponent bits (1-11)
	sig N        set the number of significand bits (1-52)
	toggle I     flip the bit at index I (0 is the sign)
	set I 0|1    set the bit at index I
	layout NAME  switch to a preset layout, keeping the leading bits
	reset        clear all the bits
	show         print the current state
	help         print this message
	quit         exit
`

// session owns a bit field and applies commands to it.
type session struct {
	field  *floatbits.BitField
	log    logrus.FieldLogger
	asJSON bool
}

func newSession(l floatbits.Layout, log logrus.FieldLogger, asJSON bool) (*session, error) {
	f, err := floatbits.NewFromLayout(l)
	if err != nil {
		return nil, err
	}
	return &session{field: f, log: log, asJSON: asJSON}, nil
}

// run reads commands line by line until EOF or quit.
// Bad commands are reported to out and don't stop the session.
func (s *session) run(in io.Reader, out io.Writer) error {
	if err := s.show(out); err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := s.exec(scanner.Text(), out)
		if err != nil {
			s.log.WithError(err).Debug("command failed")
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

func (s *session) exec(line string, out io.Writer) (quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err = io.WriteString(out, replHelp)
		return false, err
	case "show":
		return false, s.show(out)
	case "reset":
		if err := checkArgs(cmd, args, 0); err != nil {
			return false, err
		}
		s.field.Reset()
	case "exp", "sig":
		if err := checkArgs(cmd, args, 1); err != nil {
			return false, err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return false, errors.Wrapf(err, "bad width %q", args[0])
		}
		s.resize(cmd, n)
	case "toggle":
		if err := checkArgs(cmd, args, 1); err != nil {
			return false, err
		}
		idx, err := s.index(args[0])
		if err != nil {
			return false, err
		}
		s.field.ToggleBit(idx)
	case "set":
		if err := checkArgs(cmd, args, 2); err != nil {
			return false, err
		}
		idx, err := s.index(args[0])
		if err != nil {
			return false, err
		}
		if args[1] != "0" && args[1] != "1" {
			return false, errors.Errorf("bad bit value %q, must be 0 or 1", args[1])
		}
		s.field.SetBit(idx, args[1] == "1")
	case "layout":
		if err := checkArgs(cmd, args, 1); err != nil {
			return false, err
		}
		l, err := floatbits.LayoutByName(args[0])
		if err != nil {
			return false, err
		}
		s.field.SetLayout(l)
	default:
		return false, errors.Errorf("unknown command %q, try help", cmd)
	}
	s.log.WithFields(logrus.Fields{
		"cmd":    cmd,
		"args":   args,
		"layout": s.field.Layout().String(),
	}).Debug("applied")
	return false, s.show(out)
}

// resize clamps the width before changing the field.
func (s *session) resize(cmd string, n int) {
	lo, hi, resize := floatbits.MinExponentBits, floatbits.MaxExponentBits, s.field.ResizeExponent
	if cmd == "sig" {
		lo, hi, resize = floatbits.MinSignificandBits, floatbits.MaxSignificandBits, s.field.ResizeSignificand
	}
	if clamped := mathutil.Clamp(n, lo, hi); clamped != n {
		s.log.WithFields(logrus.Fields{"requested": n, "clamped": clamped}).Warnf("%s width out of range", cmd)
		n = clamped
	}
	resize(n)
}

func (s *session) index(arg string) (int, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "bad index %q", arg)
	}
	if idx < 0 || idx >= s.field.Len() {
		s.log.WithFields(logrus.Fields{"index": idx, "len": s.field.Len()}).Info("index out of range, ignored")
	}
	return idx, nil
}

func (s *session) show(out io.Writer) error {
	return writeReport(out, newReport(s.field), s.asJSON)
}

func checkArgs(cmd string, args []string, n int) error {
	if len(args) != n {
		return errors.Errorf("%s needs %d argument(s), got %d", cmd, n, len(args))
	}
	return nil
}
