package frequency

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterEmpty(t *testing.T) {
	counter := NewCounter[string]()

	_, ok := counter.Top()
	assert.False(t, ok)
	_, ok = counter.Mode()
	assert.False(t, ok)
	assert.Empty(t, counter.Ranking())
	assert.Equal(t, 0, counter.GetTotal())
}

func TestTopBreaksTiesByFirstSeen(t *testing.T) {
	counter := NewCounter[string]()
	for _, day := range []string{"Tuesday", "Monday", "Monday", "Tuesday", "Sunday"} {
		counter.Add(day)
	}

	top, ok := counter.Top()
	require.True(t, ok)
	assert.Equal(t, ValueCount[string]{Value: "Tuesday", Count: 2}, top)
	assert.Equal(t, 5, counter.GetTotal())
	assert.Equal(t, 3, counter.Len())
	assert.Equal(t, []ValueCount[string]{{Value: "Tuesday", Count: 2}, {Value: "Monday", Count: 2}, {Value: "Sunday", Count: 1}}, counter.Ranking())
}

func TestModeBreaksTiesBySmallestValue(t *testing.T) {
	counter := NewCounter[int]()
	for _, hour := range []int{17, 8, 8, 17, 23} {
		counter.Add(hour)
	}

	mode, ok := counter.Mode()
	require.True(t, ok)
	assert.Equal(t, ValueCount[int]{Value: 8, Count: 2}, mode)

	counter.Add(17)
	mode, _ = counter.Mode()
	assert.Equal(t, ValueCount[int]{Value: 17, Count: 3}, mode)
}

func TestRanking(t *testing.T) {
	counter := NewCounter[string]()
	for _, userType := range []string{"Customer", "Subscriber", "Dependent", "Subscriber", "Dependent", "Subscriber"} {
		counter.Add(userType)
	}

	expected := []ValueCount[string]{
		{Value: "Subscriber", Count: 3},
		{Value: "Dependent", Count: 2},
		{Value: "Customer", Count: 1},
	}
	if diff := cmp.Diff(expected, counter.Ranking()); diff != "" {
		t.Errorf("Ranking() mismatch (-want +got):\n%s", diff)
	}
}

func TestRankingIsDeterministicOnTies(t *testing.T) {
	counter := NewCounter[string]()
	for _, station := range []string{"C", "A", "B", "A", "C", "B"} {
		counter.Add(station)
	}

	expected := []ValueCount[string]{
		{Value: "C", Count: 2},
		{Value: "A", Count: 2},
		{Value: "B", Count: 2},
	}
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(expected, counter.Ranking()); diff != "" {
			t.Fatalf("Ranking() mismatch (-want +got):\n%s", diff)
		}
	}
}
