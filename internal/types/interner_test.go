package types

import "testing"

func TestBuiltinsAreDistinctAndStable(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	seen := map[TypeID]bool{}
	for _, id := range []TypeID{b.Unit, b.Nothing, b.Bool, b.Int, b.Float, b.String} {
		if seen[id] {
			t.Fatalf("builtin TypeID %d reused across distinct builtins", id)
		}
		seen[id] = true
	}
	if in.Intern(Type{Kind: KindBool}) != b.Bool {
		t.Error("re-interning KindBool should return the same TypeID")
	}
}

func TestInternNominalDedupsByName(t *testing.T) {
	in := NewInterner()
	a := in.Intern(Type{Kind: KindNominal, Name: 7})
	b := in.Intern(Type{Kind: KindNominal, Name: 7})
	c := in.Intern(Type{Kind: KindNominal, Name: 8})
	if a != b {
		t.Errorf("same nominal name should intern to the same id, got %d != %d", a, b)
	}
	if a == c {
		t.Errorf("distinct nominal names must not collide")
	}
}

func TestInternFnKeyedByRetAndParams(t *testing.T) {
	in := NewInterner()
	bi := in.Builtins()
	f1 := in.InternFn(bi.Int, []TypeID{bi.Bool, bi.String})
	f2 := in.InternFn(bi.Int, []TypeID{bi.Bool, bi.String})
	f3 := in.InternFn(bi.Int, []TypeID{bi.String, bi.Bool})
	if f1 != f2 {
		t.Errorf("identical fn shapes should dedup, got %d != %d", f1, f2)
	}
	if f1 == f3 {
		t.Errorf("parameter order must be significant")
	}
	got, ok := in.Lookup(f1)
	if !ok || got.Kind != KindFn || len(got.Params) != 2 {
		t.Fatalf("unexpected fn descriptor: %+v ok=%v", got, ok)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(TypeID(9999)); ok {
		t.Error("expected Lookup to fail for an out-of-range TypeID")
	}
}
