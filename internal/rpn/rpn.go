// Package rpn evaluates postfix expressions over bigint.Int values.
package rpn

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	bigint "github.com/shabbyrobe/go-bigint"
)

var (
	ErrStackUnderflow = errors.New("rpn: stack underflow")
	ErrLeftover       = errors.New("rpn: more than one value left on the stack")
	ErrEmpty          = errors.New("rpn: empty expression")
)

type binaryOp func(a, b bigint.Int) (bigint.Int, error)
type unaryOp func(a bigint.Int) bigint.Int

var binaryOps = map[string]binaryOp{
	"+": func(a, b bigint.Int) (bigint.Int, error) { return a.Add(b), nil },
	"-": func(a, b bigint.Int) (bigint.Int, error) { return a.Sub(b), nil },
	"*": func(a, b bigint.Int) (bigint.Int, error) { return a.Mul(b), nil },
	"/": bigint.Int.Quo,
	"%": bigint.Int.Rem,
}

var unaryOps = map[string]unaryOp{
	"neg": bigint.Int.Neg,
	"abs": bigint.Int.Abs,
	"inc": bigint.Int.Inc,
	"dec": bigint.Int.Dec,
}

// Machine is a postfix evaluator. A Machine is not safe for concurrent use.
type Machine struct {
	log   *zap.Logger
	stack []bigint.Int
}

// New returns a Machine that logs each step to logger at debug level. A nil
// logger disables logging.
func New(logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{log: logger}
}

// Eval evaluates the whitespace-separated tokens in line and returns the
// single value left on the stack. The stack is reset before each call.
//
// Errors are wrapped with the 1-based position and text of the token that
// caused them, so errors.Is works with ErrStackUnderflow,
// bigint.ErrDivisionByZero and friends.
func (m *Machine) Eval(line string) (bigint.Int, error) {
	m.stack = m.stack[:0]

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return bigint.Int{}, ErrEmpty
	}

	for idx, tok := range tokens {
		if err := m.step(tok); err != nil {
			m.log.Debug("rpn step failed", zap.Int("pos", idx+1), zap.String("token", tok), zap.Error(err))
			return bigint.Int{}, fmt.Errorf("rpn: token %d %q: %w", idx+1, tok, err)
		}
		m.log.Debug("rpn step",
			zap.Int("pos", idx+1),
			zap.String("token", tok),
			zap.Int("depth", len(m.stack)),
			zap.Stringer("top", m.stack[len(m.stack)-1]))
	}

	if len(m.stack) != 1 {
		return bigint.Int{}, fmt.Errorf("%w: %d values", ErrLeftover, len(m.stack))
	}
	return m.stack[0], nil
}

func (m *Machine) step(tok string) error {
	if op, ok := binaryOps[tok]; ok {
		a, b, err := m.pop2()
		if err != nil {
			return err
		}
		v, err := op(a, b)
		if err != nil {
			m.push(a, b)
			return err
		}
		m.push(v)
		return nil
	}

	if op, ok := unaryOps[tok]; ok {
		a, err := m.pop()
		if err != nil {
			return err
		}
		m.push(op(a))
		return nil
	}

	switch tok {
	case "dup":
		a, err := m.pop()
		if err != nil {
			return err
		}
		m.push(a, a)
		return nil

	case "swap":
		a, b, err := m.pop2()
		if err != nil {
			return err
		}
		m.push(b, a)
		return nil
	}

	v, err := bigint.IntFromString(tok)
	if err != nil {
		return err
	}
	m.push(v)
	return nil
}

// Depth returns the number of values on the stack after the last Eval.
func (m *Machine) Depth() int { return len(m.stack) }

func (m *Machine) push(vs ...bigint.Int) {
	m.stack = append(m.stack, vs...)
}

func (m *Machine) pop() (bigint.Int, error) {
	n := len(m.stack)
	if n < 1 {
		return bigint.Int{}, ErrStackUnderflow
	}
	v := m.stack[n-1]
	m.stack = m.stack[:n-1]
	return v, nil
}

// pop2 pops b then a, where a was pushed first.
func (m *Machine) pop2() (a, b bigint.Int, err error) {
	n := len(m.stack)
	if n < 2 {
		return a, b, ErrStackUnderflow
	}
	a, b = m.stack[n-2], m.stack[n-1]
	m.stack = m.stack[:n-2]
	return a, b, nil
}
