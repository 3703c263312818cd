package seq

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/foundation"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// counted wraps src and counts the elements pulled from it.
func counted[T any](src iter.Seq[T], pulls *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range src {
			*pulls++
			if !yield(v) {
				return
			}
		}
	}
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got %v", target, r)
		}
	}()
	fn()
}

func TestEnumerateRestarts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "foundation.seq")
	defer teardown()
	//
	src := Enumerate(Of("a", "b", "c"))
	for round := 0; round < 2; round++ {
		var positions []int
		for i := range src {
			positions = append(positions, i)
		}
		if diff := cmp.Diff([]int{0, 1, 2}, positions); diff != "" {
			t.Errorf("round %d: positions mismatch (-want +got):\n%s", round, diff)
		}
	}
}

func TestEnumerateFrom(t *testing.T) {
	var got []int
	for i := range EnumerateFrom(Of("x", "y", "z"), 5) {
		got = append(got, i)
	}
	if diff := cmp.Diff([]int{5, 6, 7}, got); diff != "" {
		t.Errorf("seeded counter mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerateInfinite(t *testing.T) {
	naturals := Generate(0, func(n int) int { return n + 1 })
	n := 0
	for i, v := range Enumerate(naturals) {
		if i != v {
			t.Fatalf("position %d carries value %d", i, v)
		}
		if n++; n == 100 {
			break
		}
	}
}

func TestEnumerateCycle(t *testing.T) {
	type tagged struct {
		C int
		V string
	}
	var got []tagged
	for c, v := range EnumerateCycle(Of("A", "B", "C", "D", "E"), 1, 2) {
		got = append(got, tagged{c, v})
	}
	want := []tagged{{1, "A"}, {2, "B"}, {1, "C"}, {2, "D"}, {1, "E"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cycling counter mismatch (-want +got):\n%s", diff)
	}
	expectPanic(t, foundation.ErrInvalidArgument, func() {
		EnumerateCycle(Of(1), 3, 1)
	})
}

func TestCycleAndTake(t *testing.T) {
	got := slices.Collect(Take(Cycle(Of("A", "B", "C")), 7))
	if diff := cmp.Diff([]string{"A", "B", "C", "A", "B", "C", "A"}, got); diff != "" {
		t.Errorf("cycle mismatch (-want +got):\n%s", diff)
	}
	if n := len(slices.Collect(Take(Cycle(Of[int]()), 3))); n != 0 {
		t.Errorf("cycling an empty sequence should yield nothing, yielded %d", n)
	}
	pulls := 0
	for range Take(counted(Range(0, 100), &pulls), 3) {
	}
	if pulls != 3 {
		t.Errorf("Take(3) pulled %d elements", pulls)
	}
}

func TestIndexFilters(t *testing.T) {
	digits := Of("0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	even := slices.Collect(FromIndex(digits, func(i int) bool { return i%2 == 0 }))
	if diff := cmp.Diff([]string{"0", "2", "4", "6", "8"}, even); diff != "" {
		t.Errorf("FromIndex mismatch (-want +got):\n%s", diff)
	}
	between := slices.Collect(WhereByIndex(digits, 2, 6))
	if diff := cmp.Diff([]string{"2", "3", "4", "5", "6"}, between); diff != "" {
		t.Errorf("WhereByIndex mismatch (-want +got):\n%s", diff)
	}
	upto := slices.Collect(WhereByIndex(digits, -3, 5))
	if len(upto) != 6 {
		t.Errorf("expected negative lower bound to be clamped, have %v", upto)
	}
	if v, _ := Nth(Range(1, 5), 4).Value(); v != 5 {
		t.Errorf("expected Nth(4) to be 5, is %d", v)
	}
	if Nth(Range(1, 5), 5).IsSome() || Nth(Range(1, 5), -1).IsSome() {
		t.Errorf("expected Nth out of range to be None")
	}
	nths := slices.Collect(Nths(Range(0, 10), 7, -1, 2, 5, 17))
	if diff := cmp.Diff([]int{2, 5, 7}, nths); diff != "" {
		t.Errorf("Nths mismatch (-want +got):\n%s", diff)
	}
	ignored := slices.Collect(IgnoreAt(Range(0, 10), 1, 3, 5, 7, 9))
	if diff := cmp.Diff([]int{0, 2, 4, 6, 8}, ignored); diff != "" {
		t.Errorf("IgnoreAt mismatch (-want +got):\n%s", diff)
	}
}

func TestSliceBySize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "foundation.seq")
	defer teardown()
	//
	chunks := slices.Collect(Slice(Range(0, 10), 2))
	want := [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {8, 9}}
	if diff := cmp.Diff(want, chunks); diff != "" {
		t.Errorf("chunks mismatch (-want +got):\n%s", diff)
	}
	chunks = slices.Collect(Slice(Range(1, 11), 2))
	if len(chunks) != 6 || len(chunks[5]) != 1 {
		t.Errorf("expected 6 chunks with a short last one, have %v", chunks)
	}
	var flat []int
	for _, c := range chunks {
		flat = append(flat, c...)
	}
	if diff := cmp.Diff(slices.Collect(Range(1, 11)), flat); diff != "" {
		t.Errorf("concatenated chunks differ from source:\n%s", diff)
	}
	expectPanic(t, foundation.ErrInvalidArgument, func() {
		Slice(Range(0, 3), 0)
	})
}

func TestSliceByPredicates(t *testing.T) {
	parts := SliceBy(Range(0, 6),
		func(n int) bool { return n%2 == 0 },
		func(n int) bool { return n%2 != 0 },
		func(n int) bool { return n > 3 }, // claims nothing, earlier ones win
	)
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, have %d", len(parts))
	}
	if diff := cmp.Diff([]int{0, 2, 4}, slices.Collect(parts[0])); diff != "" {
		t.Errorf("even part mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 3, 5}, slices.Collect(parts[1])); diff != "" {
		t.Errorf("odd part mismatch (-want +got):\n%s", diff)
	}
	if n := len(slices.Collect(parts[2])); n != 0 {
		t.Errorf("third part should be empty, has %d elements", n)
	}
}

func TestSliceByDropsUnmatched(t *testing.T) {
	parts := SliceBy(Range(0, 10), func(n int) bool { return n < 3 })
	if diff := cmp.Diff([]int{0, 1, 2}, slices.Collect(parts[0])); diff != "" {
		t.Errorf("part mismatch (-want +got):\n%s", diff)
	}
}

func TestOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "foundation.seq")
	defer teardown()
	//
	dups := slices.Collect(Duplicates(Of(1, 2, 3, 4, 5, 2, 4, 2), false))
	if diff := cmp.Diff([]int{2, 2, 4}, dups); diff != "" {
		t.Errorf("Duplicates mismatch (-want +got):\n%s", diff)
	}
	dups = slices.Collect(Duplicates(Of(1, 2, 3, 4, 5, 2, 4, 2), true))
	if diff := cmp.Diff([]int{2, 4}, dups); diff != "" {
		t.Errorf("distinct Duplicates mismatch (-want +got):\n%s", diff)
	}
	diff := slices.Collect(Difference(Of(1, 2, 3, 4, 5), Of(2, 4, 6)))
	if d := cmp.Diff([]int{1, 3, 5, 6}, diff); d != "" {
		t.Errorf("Difference mismatch (-want +got):\n%s", d)
	}
	distinct := slices.Collect(Distinct(Of(3, 1, 3, 2, 1)))
	if d := cmp.Diff([]int{3, 1, 2}, distinct); d != "" {
		t.Errorf("Distinct mismatch (-want +got):\n%s", d)
	}
	replaced := slices.Collect(Replace(Range(1, 5),
		foundation.NewPair(1, 20), foundation.NewPair(3, 40), foundation.NewPair(5, 60)))
	if d := cmp.Diff([]int{1, 20, 3, 40, 5}, replaced); d != "" {
		t.Errorf("Replace mismatch (-want +got):\n%s", d)
	}
	replaced = slices.Collect(ReplaceFunc(Range(1, 5), func(n, _ int) int {
		if n%2 == 0 {
			return n * 10
		}
		return n
	}))
	if d := cmp.Diff([]int{1, 20, 3, 40, 5}, replaced); d != "" {
		t.Errorf("ReplaceFunc mismatch (-want +got):\n%s", d)
	}
	odd := slices.Collect(Ignore(Range(0, 10), func(n int) bool { return n%2 == 0 }))
	if d := cmp.Diff([]int{1, 3, 5, 7, 9}, odd); d != "" {
		t.Errorf("Ignore mismatch (-want +got):\n%s", d)
	}
	if IndexOf(Range(1, 5), 3) != 2 || IndexOf(Range(1, 5), 6) != -1 {
		t.Errorf("IndexOf broken")
	}
	if tail := slices.Collect(RemoveTail(Range(0, 5))); !slices.Equal(tail, []int{0, 1, 2, 3}) {
		t.Errorf("RemoveTail mismatch: %v", tail)
	}
}

func TestFindUntilStopsPulling(t *testing.T) {
	pulls := 0
	found := slices.Collect(FindUntil(counted(Range(1, 10), &pulls),
		func(n int) bool { return n == 2 },
		func(n int) bool { return n == 5 },
	))
	if diff := cmp.Diff([]int{2, 5}, found); diff != "" {
		t.Errorf("FindUntil mismatch (-want +got):\n%s", diff)
	}
	if pulls != 5 {
		t.Errorf("expected FindUntil to pull 5 elements, pulled %d", pulls)
	}
	found = slices.Collect(FindUntil(Of(1, 2, 3, 2, 4, 4, 5, 6),
		func(n int) bool { return n == 2 },
		func(n int) bool { return n == 4 },
		func(n int) bool { return n == 6 },
	))
	if diff := cmp.Diff([]int{2, 4, 6}, found); diff != "" {
		t.Errorf("FindUntil with duplicates mismatch (-want +got):\n%s", diff)
	}
}

func TestSideEffectOperators(t *testing.T) {
	var s []byte
	for v := range AfterEach(Of("1", "2", "3"), func() { s = append(s, ',') }) {
		s = append(s, v...)
	}
	if string(s) != "1,2,3" {
		t.Errorf("AfterEach: expected '1,2,3', have %q", s)
	}
	firsts, lasts, loops := 0, -1, 0
	for range OnLast(OnFirst(Range(0, 10), func(int) { firsts++ }), func(n int) { lasts = n }) {
		loops++
	}
	if firsts != 1 || lasts != 9 || loops != 10 {
		t.Errorf("OnFirst/OnLast: firsts=%d lasts=%d loops=%d", firsts, lasts, loops)
	}
	type adjacent struct{ P, C int }
	var pairs []adjacent
	for range OnAdjacent(Range(0, 5), func(p, c int) { pairs = append(pairs, adjacent{p, c}) }) {
	}
	want := []adjacent{{0, 1}, {1, 2}, {2, 3}, {3, 4}}
	if diff := cmp.Diff(want, pairs); diff != "" {
		t.Errorf("OnAdjacent mismatch (-want +got):\n%s", diff)
	}
	if n := ForEach(Range(0, 9), func(int) {}); n != 9 {
		t.Errorf("ForEach should report 9 processed elements, reports %d", n)
	}
	if n := ForEach(Of[int](), func(int) {}); n != 0 {
		t.Errorf("ForEach on empty sequence should report 0, reports %d", n)
	}
}

func TestCountConditions(t *testing.T) {
	items := Of("1", "2", "3")
	if n := len(slices.Collect(AtLeast(items, 4))); n != 0 {
		t.Errorf("AtLeast(4) on 3 items yielded %d", n)
	}
	if n := len(slices.Collect(AtLeast(items, 2))); n != 3 {
		t.Errorf("AtLeast(2) on 3 items yielded %d", n)
	}
	if n := len(slices.Collect(AtLeast(items, 3))); n != 3 {
		t.Errorf("AtLeast(3) on 3 items yielded %d", n)
	}
	if n := len(slices.Collect(IfMoreThan(items, 3))); n != 0 {
		t.Errorf("IfMoreThan(3) on 3 items yielded %d", n)
	}
	if n := len(slices.Collect(IfMoreThan(items, 2))); n != 3 {
		t.Errorf("IfMoreThan(2) on 3 items yielded %d", n)
	}
	if n := len(slices.Collect(IfMoreThan(items, 0))); n != 0 {
		t.Errorf("IfMoreThan(0) should yield nothing, yielded %d", n)
	}
	if n := len(slices.Collect(AtLeast(items, -1))); n != 0 {
		t.Errorf("AtLeast(-1) should yield nothing, yielded %d", n)
	}
	got := slices.Collect(AddIfEmpty(Of[string](), func() string { return "x" }))
	if !slices.Equal(got, []string{"x"}) {
		t.Errorf("AddIfEmpty on empty: %v", got)
	}
	got = slices.Collect(IfEmpty(Of[string](), Of("a", "b")))
	if !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("IfEmpty on empty: %v", got)
	}
	got = slices.Collect(IfEmpty(items, Of("a", "b")))
	if !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Errorf("IfEmpty on non-empty: %v", got)
	}
}

func TestSingleAndFirst(t *testing.T) {
	if _, err := Single(Of[int]()); !errors.Is(err, foundation.ErrInvalidOperation) {
		t.Errorf("Single on empty sequence: expected ErrInvalidOperation, got %v", err)
	}
	if _, err := Single(Of(1, 2)); !errors.Is(err, foundation.ErrInvalidOperation) {
		t.Errorf("Single on two elements: expected ErrInvalidOperation, got %v", err)
	}
	if v, err := Single(Of(7)); err != nil || v != 7 {
		t.Errorf("Single(7) = %d, %v", v, err)
	}
	if First(Of[int]()).IsSome() {
		t.Errorf("First of empty sequence should be None")
	}
}

func TestOrderingAndStatistics(t *testing.T) {
	if !IsInAscendingOrder(Of(3, 4, 4, 7, 9), cmpInt) {
		t.Errorf("3,4,4,7,9 is ascending")
	}
	if IsInAscendingOrder(Of(4, 3, 7, 9), cmpInt) {
		t.Errorf("4,3,7,9 is not ascending")
	}
	lo, hi, ok := MinMax(Of(1, 2, 2, 2, 5, 3, 3, 3, 3, 4))
	if !ok || lo != 1 || hi != 5 {
		t.Errorf("MinMax = %d, %d, %v", lo, hi, ok)
	}
	if _, _, ok := MinMax(Of[int]()); ok {
		t.Errorf("MinMax of empty sequence must not be ok")
	}
	top, n := MostFrequent(Of(1, 2, 2, 2, 2, 3, 3, 3, 3, 4), identity[int])
	if diff := cmp.Diff([]int{2, 3}, top); diff != "" || n != 4 {
		t.Errorf("MostFrequent mismatch (count %d):\n%s", n, diff)
	}
}

func cmpInt(a, b int) int { return a - b }

func TestCombining(t *testing.T) {
	type pair struct{ L, R string }
	var product []pair
	for l, r := range CartesianProduct(Of("1", "2", "3"), Of("a", "b", "c")) {
		product = append(product, pair{l, r})
	}
	if len(product) != 9 || product[0] != (pair{"1", "a"}) || product[5] != (pair{"2", "c"}) {
		t.Errorf("unexpected cartesian product %v", product)
	}
	zipped := slices.Collect(ZipWhere(Of("1", "2", "3"), Of("a", "b", "c", "1", "3", "1"),
		func(l, r string) bool { return l == r },
		func(l, r string) string { return l + r },
	))
	if diff := cmp.Diff([]string{"11", "11", "33"}, zipped); diff != "" {
		t.Errorf("ZipWhere mismatch (-want +got):\n%s", diff)
	}
}

func TestTransformations(t *testing.T) {
	words := Of("apple", "avocado", "banana", "blueberry", "cherry")
	m := ToMultiMap(words, func(w string) byte { return w[0] }, func(w string) int { return len(w) })
	if m.Len() != 3 || m.ValuesCount('b') != 2 {
		t.Errorf("unexpected grouping %v", m)
	}
	rel := ToOneToMany(Of(1, 2), strconv.Itoa, func(n int) iter.Seq[int] { return Range(0, n) })
	if got, _ := rel.TryGetValues("2"); !slices.Equal(got, []int{0, 1}) {
		t.Errorf("ToOneToMany: bucket of '2' is %v", got)
	}
	var flat []string
	for l, r := range ToOneToOne(Of(1, 2), strconv.Itoa, func(n int) iter.Seq[int] { return Range(0, n) }) {
		flat = append(flat, l+":"+strconv.Itoa(r))
	}
	if diff := cmp.Diff([]string{"1:0", "2:0", "2:1"}, flat); diff != "" {
		t.Errorf("ToOneToOne mismatch (-want +got):\n%s", diff)
	}
	parsed := ToOptions(Of("1", "x", "3"), func(s string) foundation.Option[int] {
		n, err := strconv.Atoi(s)
		return foundation.Maybe(n, err == nil)
	})
	var opts []string
	for o := range parsed {
		opts = append(opts, o.String())
	}
	if diff := cmp.Diff([]string{"Some(1)", "None", "Some(3)"}, opts); diff != "" {
		t.Errorf("ToOptions mismatch (-want +got):\n%s", diff)
	}
	if s := ToReadableString(Range(1, 3), ", "); s != "1, 2, 3" {
		t.Errorf("ToReadableString = %q", s)
	}
	ords := slices.Collect(ToOrdinals(Of("a", "B", "c", "D"), func(s string) bool { return s < "a" }))
	if len(ords) != 2 || ords[0].Position != 1 || ords[1].Position != 3 {
		t.Errorf("ToOrdinals = %v", ords)
	}
}
