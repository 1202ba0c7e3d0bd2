package symtab

import (
	"slices"
	"testing"
)

func TestHash_Values(t *testing.T) {
	tests := []struct {
		name    string
		buckets int
		want    int
	}{
		{"", 100, 0},
		{"a", 100, 97},
		{"b", 100, 98},
		{"ab", 100, (97*31 + 98) % 100},
		{"AR", 100, 97},
		{"0m", 100, 97},
		{"a", 7, 97 % 7},
		{"é", 100, 0xe9 % 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hash(tt.name, tt.buckets); got != tt.want {
				t.Errorf("Hash(%q, %d) = %d, want %d", tt.name, tt.buckets, got, tt.want)
			}
		})
	}
}

func TestHash_Deterministic(t *testing.T) {
	tbl := NewTable(0)

	for _, name := range []string{"a", "counter", "x1", "δ", "long_identifier_name"} {
		first := tbl.Hash(name)
		for range 10 {
			if got := tbl.Hash(name); got != first {
				t.Fatalf("Hash(%q) changed from %d to %d", name, first, got)
			}
		}

		if first < 0 || first >= tbl.Buckets() {
			t.Errorf("Hash(%q) = %d out of range", name, first)
		}
	}
}

func TestHash_OrderSensitive(t *testing.T) {
	if Hash("ab", 100) == Hash("ba", 100) {
		t.Error("expected anagrams ab and ba to hash differently")
	}
}

func TestNewTable_DefaultBuckets(t *testing.T) {
	for _, n := range []int{0, -5} {
		if got := NewTable(n).Buckets(); got != DefaultBuckets {
			t.Errorf("NewTable(%d).Buckets() = %d, want %d", n, got, DefaultBuckets)
		}
	}

	if got := NewTable(13).Buckets(); got != 13 {
		t.Errorf("NewTable(13).Buckets() = %d", got)
	}
}

func TestTable_InsertFind(t *testing.T) {
	tbl := NewTable(DefaultBuckets)

	if !tbl.Insert(Binding{Name: "x", Nature: "local", Value: 1}) {
		t.Fatal("first insert should add")
	}

	b, ok := tbl.Find("x")
	if !ok || b.Value != 1 || b.Nature != "local" {
		t.Fatalf("Find(x) = %+v, %v", b, ok)
	}

	if _, ok := tbl.Find("y"); ok {
		t.Error("Find(y) should miss")
	}
}

func TestTable_OverwriteUpdatesValueOnly(t *testing.T) {
	tbl := NewTable(DefaultBuckets)
	bucket := tbl.Hash("x")

	tbl.Insert(Binding{Name: "x", Nature: "local", Type: "int", Value: 1, Address: 1001})

	if tbl.Insert(Binding{Name: "x", Nature: "para", Type: "float", Value: 2, Address: 9}) {
		t.Error("second insert of x should not add")
	}

	if got := tbl.BucketLen(bucket); got != 1 {
		t.Errorf("bucket length = %d, want 1", got)
	}

	if got := tbl.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	want := Binding{Name: "x", Nature: "local", Type: "int", Value: 2, Address: 1001}
	if got, _ := tbl.Find("x"); got != want {
		t.Errorf("Find(x) = %+v, want %+v", got, want)
	}
}

func TestTable_Chaining(t *testing.T) {
	tbl := NewTable(DefaultBuckets)
	names := []string{"a", "AR", "0m"}

	for i, name := range names {
		if tbl.Hash(name) != 97 {
			t.Fatalf("test precondition: %q must hash to 97", name)
		}

		tbl.Insert(Binding{Name: name, Nature: "local", Value: int64(i + 1)})
	}

	if got := tbl.BucketLen(97); got != len(names) {
		t.Fatalf("bucket 97 length = %d, want %d", got, len(names))
	}

	// Update the middle entry only.
	tbl.Insert(Binding{Name: "AR", Value: 20})

	want := map[string]int64{"a": 1, "AR": 20, "0m": 3}
	for name, v := range want {
		b, ok := tbl.Find(name)
		if !ok || b.Value != v {
			t.Errorf("Find(%q) = %+v, %v; want value %d", name, b, ok, v)
		}
	}

	if got := tbl.BucketLen(97); got != len(names) {
		t.Errorf("bucket 97 length after update = %d", got)
	}
}

func TestTable_EntriesOrder(t *testing.T) {
	tbl := NewTable(DefaultBuckets)

	// Bucket order first (b=98 after the 97 chain), then insertion order.
	for _, name := range []string{"b", "0m", "a", "AR"} {
		tbl.Insert(Binding{Name: name})
	}

	var got []string
	for _, b := range tbl.Entries() {
		got = append(got, b.Name)
	}

	want := []string{"0m", "a", "AR", "b"}
	if !slices.Equal(got, want) {
		t.Errorf("Entries() order = %v, want %v", got, want)
	}
}

func TestTable_AllStopsEarly(t *testing.T) {
	tbl := NewTable(DefaultBuckets)
	for _, name := range []string{"a", "b", "c"} {
		tbl.Insert(Binding{Name: name})
	}

	n := 0
	for range tbl.All() {
		n++
		if n == 2 {
			break
		}
	}

	if n != 2 {
		t.Errorf("iterated %d, want 2", n)
	}
}

func TestTable_BucketLenOutOfRange(t *testing.T) {
	tbl := NewTable(10)

	for _, i := range []int{-1, 10, 100} {
		if got := tbl.BucketLen(i); got != 0 {
			t.Errorf("BucketLen(%d) = %d, want 0", i, got)
		}
	}
}

func TestTable_EntriesAreCopies(t *testing.T) {
	tbl := NewTable(DefaultBuckets)
	tbl.Insert(Binding{Name: "x", Value: 1})

	entries := tbl.Entries()
	entries[0].Value = 99

	if b, _ := tbl.Find("x"); b.Value != 1 {
		t.Errorf("mutating Entries() result changed the table: %+v", b)
	}
}
