package partition

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/wordkit/alphabet"
	"github.com/randalmurphal/wordkit/casefile"
)

func TestMinPartitions_Fixtures(t *testing.T) {
	suite, err := casefile.Load("testdata/min_split.toml")
	require.NoError(t, err)
	require.Equal(t, "MinPartitions", suite.Function)

	for _, tc := range suite.Cases {
		t.Run(tc.Label(), func(t *testing.T) {
			got, err := MinPartitions(tc.Input)
			if tc.WantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, alphabet.ErrInvalidInput)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got)

			segs, err := Segments(tc.Input)
			require.NoError(t, err)
			assert.Len(t, segs, tc.Want)
		})
	}
}

func TestMinPartitions_RejectsBeforeScanning(t *testing.T) {
	// The repeat comes before the bad symbol; validation still wins.
	_, err := MinPartitions("aa!")
	var symErr *alphabet.SymbolError
	require.ErrorAs(t, err, &symErr)
	assert.Equal(t, '!', symErr.Symbol)
	assert.Equal(t, 2, symErr.Offset)
	assert.Equal(t, "lower", symErr.Alphabet)
}

func TestSegments(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: nil},
		{input: "world", want: []string{"world"}},
		{input: "dddd", want: []string{"d", "d", "d", "d"}},
		{input: "cycle", want: []string{"cy", "cle"}},
		{input: "abba", want: []string{"ab", "ba"}},
		{input: "abcadefgahiklmnoa", want: []string{"abc", "adefg", "ahiklmno", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Segments(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegments_Invalid(t *testing.T) {
	segs, err := Segments("abc D")
	assert.ErrorIs(t, err, alphabet.ErrInvalidInput)
	assert.Nil(t, segs)
}

func distinct(s string) bool {
	var seen alphabet.Set
	for _, r := range s {
		i, _ := alphabet.Lower.Index(r)
		if seen.Has(i) {
			return false
		}
		seen = seen.Add(i)
	}
	return true
}

// bruteForce tries every split point and returns the fewest segments.
func bruteForce(s string) int {
	if s == "" {
		return 0
	}
	best := len(s)
	for end := 1; end <= len(s); end++ {
		if !distinct(s[:end]) {
			break
		}
		best = min(best, 1+bruteForce(s[end:]))
	}
	return best
}

func randomLower(rng *rand.Rand, n int, letters int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + rng.IntN(letters))
	}
	return string(b)
}

func TestMinPartitions_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for range 2000 {
		// A small letter pool keeps repeats frequent.
		s := randomLower(rng, rng.IntN(11), 1+rng.IntN(5))

		got, err := MinPartitions(s)
		require.NoError(t, err)
		assert.Equal(t, bruteForce(s), got, "source %q", s)
	}
}

func TestSegments_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 17))
	for range 1000 {
		s := randomLower(rng, rng.IntN(40), 1+rng.IntN(26))

		segs, err := Segments(s)
		require.NoError(t, err)

		assert.Equal(t, s, strings.Join(segs, ""), "segments must cover the input")

		n, err := MinPartitions(s)
		require.NoError(t, err)
		assert.Len(t, segs, n)

		for i, seg := range segs {
			assert.NotEmpty(t, seg)
			assert.True(t, distinct(seg), "segment %q of %q repeats a letter", seg, s)
			if i > 0 {
				assert.False(t, distinct(segs[i-1]+seg),
					"segments %q and %q of %q could merge", segs[i-1], seg, s)
			}
		}
	}
}

func TestMinPartitions_AllSameLetter(t *testing.T) {
	for n := 1; n <= 50; n++ {
		got, err := MinPartitions(strings.Repeat("q", n))
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestMinPartitions_Concurrent(t *testing.T) {
	inputs := map[string]int{
		"world": 1,
		"dddd":  4,
		"cycle": 2,
		"abba":  2,
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				for in, want := range inputs {
					got, err := MinPartitions(in)
					if err != nil || got != want {
						t.Errorf("MinPartitions(%q) = %d, %v; want %d", in, got, err, want)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMinPartitions(b *testing.B) {
	source := strings.Repeat("abcadefgahiklmnoa", 64)

	b.ResetTimer()
	for range b.N {
		_, _ = MinPartitions(source)
	}
}

func BenchmarkSegments(b *testing.B) {
	source := strings.Repeat("abcadefgahiklmnoa", 64)

	b.ResetTimer()
	for range b.N {
		_, _ = Segments(source)
	}
}
