package seq

import (
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/foundation"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func divisibleBy(k int) func(int) bool {
	return func(n int) bool { return n%k == 0 }
}

func constant(s string) func(int) string {
	return func(int) string { return s }
}

func TestFizzBuzzDualStreams(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "foundation.seq")
	defer teardown()
	//
	fizzbuzz := ToDualOrdinalStreams(Range(1, 20), divisibleBy(15), constant("FizzBuzz"), true).
		FilterLeft(divisibleBy(3), constant("Fizz"), true).
		FilterLeft(divisibleBy(5), constant("Buzz"), true).
		MergeStreams(strconv.Itoa)
	want := []string{"1", "2", "Fizz", "4", "Buzz", "Fizz", "7", "8", "Fizz", "Buzz",
		"11", "Fizz", "13", "14", "FizzBuzz", "16", "17", "Fizz", "19", "Buzz"}
	if diff := cmp.Diff(want, slices.Collect(fizzbuzz)); diff != "" {
		t.Errorf("fizzbuzz mismatch (-want +got):\n%s", diff)
	}
}

func TestDualStreamsCoverEveryPosition(t *testing.T) {
	d := ToDualOrdinalStreams(Range(1, 50), divisibleBy(15), constant("FizzBuzz"), true).
		FilterLeft(divisibleBy(3), constant("Fizz"), true).
		FilterLeft(divisibleBy(5), constant("Buzz"), true)
	if d.Stages() != 3 {
		t.Fatalf("expected 3 stages, have %d", d.Stages())
	}
	seen := make(map[int]int)
	for o := range d.Left() {
		if !o.IsLeft {
			t.Errorf("left element %v not flagged as left", o)
		}
		seen[o.Position]++
	}
	for o := range d.Matched() {
		if o.IsLeft {
			t.Errorf("matched element %v flagged as left", o)
		}
		seen[o.Position]++
	}
	for pos := 0; pos < 50; pos++ {
		if seen[pos] != 1 {
			t.Errorf("position %d accounted for %d times", pos, seen[pos])
		}
	}
	merged := slices.Collect(d.MergeStreams(strconv.Itoa))
	if len(merged) != 50 {
		t.Errorf("merged stream has %d elements, expected 50", len(merged))
	}
}

func TestDualStreamsStagesSeeOnlyLeft(t *testing.T) {
	var seenBySecond []int
	d := ToDualOrdinalStreams(Range(0, 6), isEven, func(n int) int { return -n }, true).
		FilterLeft(func(n int) bool {
			seenBySecond = append(seenBySecond, n)
			return false
		}, identity[int], true)
	for range d.Left() {
	}
	if diff := cmp.Diff([]int{1, 3, 5}, seenBySecond); diff != "" {
		t.Errorf("second stage saw claimed elements (-want +got):\n%s", diff)
	}
}

func TestDualStreamsNonExhaustive(t *testing.T) {
	d := ToDualOrdinalStreams(Range(1, 6), divisibleBy(2), constant("even"), false).
		FilterLeft(divisibleBy(3), constant("three"), true)
	left := slices.Collect(d.Left())
	var positions []int
	for _, o := range left {
		positions = append(positions, o.Position)
	}
	// 2 and 4 stay left, 3 and 6 are consumed by the exhaustive stage
	if diff := cmp.Diff([]int{0, 1, 3, 4}, positions); diff != "" {
		t.Errorf("left positions mismatch (-want +got):\n%s", diff)
	}
	matched := 0
	for range d.Matched() {
		matched++
	}
	if matched != 5 { // 2, 4, 6 as even; 3, 6 as three
		t.Errorf("expected 5 matches, have %d", matched)
	}
	merged := slices.Collect(d.MergeStreams(strconv.Itoa))
	want := []string{"1", "even", "three", "even", "5", "even"}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestDualStreamsRejectNilFuncs(t *testing.T) {
	expectPanic(t, foundation.ErrInvalidArgument, func() {
		ToDualOrdinalStreams(Range(0, 3), nil, identity[int], true)
	})
	expectPanic(t, foundation.ErrInvalidArgument, func() {
		ToDualOrdinalStreams(Range(0, 3), isEven, identity[int], true).MergeStreams(nil)
	})
}
