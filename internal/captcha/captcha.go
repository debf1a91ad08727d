// Package captcha implements the arithmetic challenge shown on the public
// forms. It is a deterrent against casual bots, not an access control.
package captcha

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	MinOperand = 1
	MaxOperand = 10
)

// Messages shown next to the challenge field.
const (
	MsgMissing = "Please solve the math problem"
	MsgWrong   = "Incorrect answer, please try again"
)

// Challenge is a question and its expected answer.
type Challenge struct {
	Question string `json:"question"`
	Answer   int    `json:"-"`
}

// IntN returns a uniform integer in [0, n).
type IntN func(n int) int

// Generator produces challenges from a random source.
type Generator struct {
	intN IntN
}

// NewGenerator returns a Generator. A nil source uses math/rand/v2.
func NewGenerator(src IntN) *Generator {
	if src == nil {
		src = rand.IntN
	}
	return &Generator{intN: src}
}

// Generate returns a fresh challenge with two operands in [MinOperand, MaxOperand].
func (g *Generator) Generate() Challenge {
	a := g.operand()
	b := g.operand()
	return Challenge{
		Question: fmt.Sprintf("%d + %d", a, b),
		Answer:   a + b,
	}
}

func (g *Generator) operand() int {
	return MinOperand + g.intN(MaxOperand-MinOperand+1)
}

var defaultGenerator = NewGenerator(nil)

// Generate returns a challenge from the package default generator.
func Generate() Challenge {
	return defaultGenerator.Generate()
}

// Validate reports whether input, trimmed, is the base-10 integer answer to ch.
// A leading plus sign and leading zeros are accepted; trailing text is not.
func Validate(ch Challenge, input string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return false
	}
	return n == ch.Answer
}

// ErrMalformedQuestion is returned by Parse for anything Generate could not
// have produced.
var ErrMalformedQuestion = errors.New("malformed challenge question")

// Parse rebuilds a challenge from its question so a server can check an
// answer computed against a client-held challenge.
func Parse(question string) (Challenge, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(question), " + ")
	if !ok {
		return Challenge{}, ErrMalformedQuestion
	}
	a, errA := strconv.Atoi(left)
	b, errB := strconv.Atoi(right)
	if errA != nil || errB != nil || !inRange(a) || !inRange(b) {
		return Challenge{}, ErrMalformedQuestion
	}
	return Challenge{Question: fmt.Sprintf("%d + %d", a, b), Answer: a + b}, nil
}

func inRange(n int) bool {
	return n >= MinOperand && n <= MaxOperand
}
