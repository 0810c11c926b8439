package blocks

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func ints(t *testing.T, capacity int, items ...int) *List[int] {
	t.Helper()
	l, err := FromSlice(Config[int]{Extender: ConstantExtender(capacity)}, items)
	if err != nil {
		t.Fatalf("cannot create list: %v", err)
	}
	if err := l.Check(); err != nil {
		t.Fatalf("fresh list violates invariants: %v", err)
	}
	return l
}

func expectItems(t *testing.T, l *List[int], want ...int) {
	t.Helper()
	if want == nil {
		want = []int{}
	}
	if diff := cmp.Diff(want, l.Items()); diff != "" {
		t.Fatalf("unexpected list items (-want +got):\n%s", diff)
	}
	if l.Len() != len(want) {
		t.Fatalf("list length = %d, want %d", l.Len(), len(want))
	}
	if err := l.Check(); err != nil {
		t.Fatalf("list %v violates invariants: %v", l, err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int]{Extender: ConstantExtender(0)})
	if !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestEmptyList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blocks")
	defer teardown()
	//
	l := ints(t, 4)
	if !l.IsEmpty() || l.BlockCount() != 1 {
		t.Fatalf("expected one empty block, have %d blocks", l.BlockCount())
	}
	if _, err := l.RemoveFirst(); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList, got %v", err)
	}
	if _, err := l.RemoveLast(); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList, got %v", err)
	}
	if _, err := l.RemoveAt(0); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList, got %v", err)
	}
	if _, err := l.At(0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestAppendOpensNewBlocks(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := ints(t, 5, 1, 2, 3, 4, 5)
	if l.BlockCount() != 2 {
		t.Fatalf("full first block should open a second one, have %d blocks", l.BlockCount())
	}
	b, _ := l.Block(1)
	if !b.IsEmpty() {
		t.Fatalf("expected empty open tail block, is %s", b)
	}
	if err := l.Append(6, 7); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	expectItems(t, l, 1, 2, 3, 4, 5, 6, 7)
	if l.BlockCount() != 2 {
		t.Fatalf("expected 2 blocks, have %d", l.BlockCount())
	}
}

func TestLocateBinarySearch(t *testing.T) {
	l := ints(t, 3)
	for i := range 20 {
		_ = l.Append(i)
	}
	for p := range 20 {
		bi, off := l.locate(p)
		if bi != p/3 || off != p%3 {
			t.Fatalf("locate(%d) = (%d,%d), want (%d,%d)", p, bi, off, p/3, p%3)
		}
		if v, err := l.At(p); err != nil || v != p {
			t.Fatalf("At(%d) = %d, %v", p, v, err)
		}
	}
}

func TestInsertAtCascadesCarry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blocks")
	defer teardown()
	//
	l := ints(t, 3, 1, 2, 3, 4, 5, 6, 7)
	if err := l.InsertAt(1, 10); err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}
	expectItems(t, l, 1, 10, 2, 3, 4, 5, 6, 7)
	if err := l.InsertFirst(0); err != nil {
		t.Fatalf("InsertFirst failed: %v", err)
	}
	expectItems(t, l, 0, 1, 10, 2, 3, 4, 5, 6, 7)
	if err := l.InsertAt(l.Len(), 99); err != nil {
		t.Fatalf("InsertAt(Len) failed: %v", err)
	}
	expectItems(t, l, 0, 1, 10, 2, 3, 4, 5, 6, 7, 99)
	if err := l.InsertAt(l.Len()+1, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := l.InsertAt(-1, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestInsertAtEveryPosition(t *testing.T) {
	for p := 0; p <= 7; p++ {
		l := ints(t, 5, 1, 2, 3, 4, 5, 6, 7)
		if err := l.InsertAt(p, 100); err != nil {
			t.Fatalf("InsertAt(%d) failed: %v", p, err)
		}
		if v, _ := l.At(p); v != 100 {
			t.Fatalf("after InsertAt(%d), list[%d] = %d", p, p, v)
		}
		want := append([]int{1, 2, 3, 4, 5, 6, 7}[:p:p], 100)
		want = append(want, []int{1, 2, 3, 4, 5, 6, 7}[p:]...)
		expectItems(t, l, want...)
	}
}

func TestRemoveAtScenario(t *testing.T) {
	l := ints(t, 5, 1, 2, 3, 4, 5, 6, 7)
	if l.BlockCount() != 2 {
		t.Fatalf("expected blocks [1..5],[6,7], have %d blocks", l.BlockCount())
	}
	v, err := l.RemoveAt(5)
	if err != nil || v != 6 {
		t.Fatalf("RemoveAt(5) = %d, %v; want 6", v, err)
	}
	expectItems(t, l, 1, 2, 3, 4, 5, 7)
}

func TestRemoveRefillsFromSuccessors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blocks")
	defer teardown()
	//
	l := ints(t, 3, 1, 2, 3, 4, 5, 6)
	if l.BlockCount() != 3 {
		t.Fatalf("expected two full blocks and an empty tail, have %d blocks", l.BlockCount())
	}
	v, err := l.RemoveFirst()
	if err != nil || v != 1 {
		t.Fatalf("RemoveFirst = %d, %v", v, err)
	}
	expectItems(t, l, 2, 3, 4, 5, 6)
	if l.BlockCount() != 2 {
		t.Fatalf("empty tail should have been dropped, have %d blocks", l.BlockCount())
	}
	v, err = l.RemoveLast()
	if err != nil || v != 6 {
		t.Fatalf("RemoveLast = %d, %v", v, err)
	}
	expectItems(t, l, 2, 3, 4, 5)
	if _, err = l.RemoveAt(4); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	for !l.IsEmpty() {
		if _, err = l.RemoveAt(l.Len() / 2); err != nil {
			t.Fatalf("RemoveAt failed: %v", err)
		}
		if err = l.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if l.BlockCount() != 1 {
		t.Fatalf("empty list should have a single block, has %d", l.BlockCount())
	}
}

func TestRemoveMultiple(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tests := []struct {
		count, pos int
		want       []int
	}{
		{0, 0, items},
		{0, 5, items},
		{0, 11, items},
		{3, 8, items[:8]},
		{11, 0, nil},
		{8, 3, items[:3]},
		{4, 4, []int{0, 1, 2, 3, 8, 9, 10}},
		{2, 1, []int{0, 3, 4, 5, 6, 7, 8, 9, 10}},
		{5, 0, items[5:]},
		{6, 2, []int{0, 1, 8, 9, 10}},
	}
	for _, test := range tests {
		l := ints(t, 4, items...)
		if err := l.RemoveMultiple(test.count, test.pos); err != nil {
			t.Fatalf("RemoveMultiple(%d, %d) failed: %v", test.count, test.pos, err)
		}
		expectItems(t, l, test.want...)
	}
	l := ints(t, 4, items...)
	if err := l.RemoveMultiple(-1, 0); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
	if err := l.RemoveMultiple(3, 9); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestRandomEditsMatchModel(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	for _, ext := range []Extender{ConstantExtender(1), ConstantExtender(3), DoublingExtender(2, 16)} {
		l, err := New(Config[int]{Extender: ext})
		if err != nil {
			t.Fatal(err)
		}
		var model []int
		for step := range 2000 {
			switch op := rnd.Intn(6); {
			case op <= 2 || len(model) == 0:
				p := rnd.Intn(len(model) + 1)
				if err := l.InsertAt(p, step); err != nil {
					t.Fatalf("InsertAt(%d): %v", p, err)
				}
				model = append(model[:p], append([]int{step}, model[p:]...)...)
			case op == 3:
				p := rnd.Intn(len(model))
				v, err := l.RemoveAt(p)
				if err != nil || v != model[p] {
					t.Fatalf("RemoveAt(%d) = %d, %v; want %d", p, v, err, model[p])
				}
				model = append(model[:p], model[p+1:]...)
			case op == 4:
				p := rnd.Intn(len(model) + 1)
				n := rnd.Intn(len(model) - p + 1)
				if err := l.RemoveMultiple(n, p); err != nil {
					t.Fatalf("RemoveMultiple(%d, %d): %v", n, p, err)
				}
				model = append(model[:p], model[p+n:]...)
			default:
				if err := l.Reverse(); err != nil {
					t.Fatalf("Reverse: %v", err)
				}
				for i, j := 0, len(model)-1; i < j; i, j = i+1, j-1 {
					model[i], model[j] = model[j], model[i]
				}
			}
			if err := l.Check(); err != nil {
				t.Fatalf("step %d: %v", step, err)
			}
		}
		expectItems(t, l, model...)
	}
}

func TestReverse(t *testing.T) {
	for n := 0; n <= 13; n++ {
		items := make([]int, n)
		want := make([]int, n)
		for i := range n {
			items[i] = i
			want[n-1-i] = i
		}
		l := ints(t, 4, items...)
		if err := l.Reverse(); err != nil {
			t.Fatalf("Reverse failed: %v", err)
		}
		expectItems(t, l, want...)
		if err := l.Reverse(); err != nil {
			t.Fatalf("Reverse failed: %v", err)
		}
		expectItems(t, l, items...)
	}
}

func TestReverseKeepsEmptyTailOpen(t *testing.T) {
	l := ints(t, 3, 1, 2, 3, 4, 5, 6)
	tail, _ := l.Block(2)
	if err := l.Reverse(); err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	expectItems(t, l, 6, 5, 4, 3, 2, 1)
	if b, _ := l.Block(2); b != tail {
		t.Fatalf("empty tail block should stay in place")
	}
}

func TestMultiply(t *testing.T) {
	l := ints(t, 2, 1, 2, 3)
	m, err := l.Multiply(-2)
	if err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	expectItems(t, m, 3, 2, 1, 3, 2, 1)
	m, err = l.Multiply(3)
	if err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	expectItems(t, m, 1, 2, 3, 1, 2, 3, 1, 2, 3)
	m, err = l.Multiply(0)
	if err != nil {
		t.Fatalf("Multiply failed: %v", err)
	}
	expectItems(t, m)
	expectItems(t, l, 1, 2, 3)
}

func TestAddAndSubtract(t *testing.T) {
	a := ints(t, 2, 1, 2, 3)
	b := ints(t, 3, 4, 5)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	expectItems(t, sum, 1, 2, 3, 4, 5)
	diff, err := sum.Subtract(4)
	if err != nil {
		t.Fatalf("Subtract failed: %v", err)
	}
	expectItems(t, diff, 1)
	expectItems(t, sum, 1, 2, 3, 4, 5)
	if _, err = diff.Subtract(2); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
	if _, err = a.Add(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestGrowWithGenerator(t *testing.T) {
	l, err := New(Config[int]{
		Extender:  ConstantExtender(4),
		Generator: FromFunc(func(i int) int { return i * i }),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err = l.Grow(6); err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	expectItems(t, l, 0, 1, 4, 9, 16, 25)
	if err = l.Resize(3); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	expectItems(t, l, 0, 1, 4)
	if err = l.Resize(4); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	expectItems(t, l, 0, 1, 4, 9)
	if err = l.Shrink(5); !errors.Is(err, ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestAbsentGeneratorValues(t *testing.T) {
	strict, err := New(Config[*int]{})
	if err != nil {
		t.Fatal(err)
	}
	if err = strict.Grow(1); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant for absent value, got %v", err)
	}
	if !strict.IsEmpty() {
		t.Fatalf("failed Grow must not add elements")
	}
	lenient, err := New(Config[*int]{AllowAbsent: true})
	if err != nil {
		t.Fatal(err)
	}
	if err = lenient.Grow(2); err != nil {
		t.Fatalf("Grow with absent values failed: %v", err)
	}
	if v, _ := lenient.At(1); v != nil {
		t.Fatalf("absent value should be stored as nil")
	}
}

func TestSearchAndContains(t *testing.T) {
	l := ints(t, 2, 5, 6, 7, 8, 9)
	if Index(l, 8) != 3 || !Contains(l, 9) || Contains(l, 4) {
		t.Fatalf("unexpected search results in %v", l)
	}
	if err := l.Set(3, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if l.IndexFunc(func(v int) bool { return v < 5 }) != 3 {
		t.Fatalf("expected 0 at position 3")
	}
	if l.String() != "[5 6 7 0 9]" {
		t.Fatalf("unexpected String() = %s", l)
	}
}

func TestIterators(t *testing.T) {
	l := ints(t, 2, 1, 2, 3, 4, 5)
	var fw, bw []int
	for p, v := range l.All() {
		if p != v-1 {
			t.Fatalf("position %d carries %d", p, v)
		}
		fw = append(fw, v)
	}
	for p, v := range l.Backward() {
		if p != v-1 {
			t.Fatalf("position %d carries %d", p, v)
		}
		bw = append(bw, v)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, fw); diff != "" {
		t.Fatalf("forward iteration (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{5, 4, 3, 2, 1}, bw); diff != "" {
		t.Fatalf("backward iteration (-want +got):\n%s", diff)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	l := ints(t, 3, 1, 2, 3, 4)
	c := l.Clone()
	_ = c.Set(0, 100)
	_ = c.Append(5)
	expectItems(t, l, 1, 2, 3, 4)
	expectItems(t, c, 100, 2, 3, 4, 5)
}

func TestClear(t *testing.T) {
	l := ints(t, 3, 1, 2, 3, 4)
	if err := l.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	expectItems(t, l)
	if l.BlockCount() != 1 {
		t.Fatalf("cleared list should have one block, has %d", l.BlockCount())
	}
}
