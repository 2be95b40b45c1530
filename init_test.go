package bigint

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzOpsActive  = allFuzzOps
	fuzzMaxDigits  = fuzzDefaultMaxDigits
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "bigint.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.IntVar(&fuzzMaxDigits, "bigint.fuzzdigits", fuzzMaxDigits, "Maximum number of decimal digits in a fuzz operand")
	flag.Int64Var(&fuzzSeed, "bigint.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "bigint.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("max digits:", fuzzMaxDigits)

	code := m.Run()
	os.Exit(code)
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBigInt returns a signed big.Int with a uniformly distributed number
// of decimal digits in [0, maxDigits]. Zero digits means 0.
func randomBigInt(rng *rand.Rand, maxDigits int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	digits := rng.Intn(maxDigits + 1)
	if digits == 0 {
		return new(big.Int)
	}

	var sb strings.Builder
	if rng.Intn(2) == 1 {
		sb.WriteByte('-')
	}
	sb.WriteByte(byte('1' + rng.Intn(9)))
	for i := 1; i < digits; i++ {
		// Bias towards runs of 0s and 9s so carries and borrows across limb
		// boundaries are common.
		switch rng.Intn(4) {
		case 0:
			sb.WriteByte('0')
		case 1:
			sb.WriteByte('9')
		default:
			sb.WriteByte(byte('0' + rng.Intn(10)))
		}
	}

	v, ok := new(big.Int).SetString(sb.String(), 10)
	if !ok {
		panic(fmt.Errorf("bigint: bad random number %q", sb.String()))
	}
	return v
}

// ints parses s, ignoring spaces, and panics if it is malformed.
func ints(s string) Int {
	return MustIntFromString(strings.Replace(s, " ", "", -1))
}

var i64 = IntFrom64

func bigI64(i int64) *big.Int { return new(big.Int).SetInt64(i) }

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 10)
	if !ok {
		panic(s)
	}
	return v
}
