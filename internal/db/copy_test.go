package db

import "testing"

type fakeRow struct {
	id   int64
	name string
}

func (r *fakeRow) CopyValues() []any {
	return []any{r.id, r.name}
}

func TestChannelSource(t *testing.T) {
	ch := make(chan *fakeRow, 3)
	ch <- &fakeRow{1, "a"}
	ch <- &fakeRow{2, "b"}
	close(ch)

	src := NewChannelSource(ch)

	var ids []int64
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			t.Fatalf("Values: %v", err)
		}
		if len(vals) != 2 {
			t.Fatalf("values len = %d, want 2", len(vals))
		}
		ids = append(ids, vals[0].(int64))
	}

	if src.Err() != nil {
		t.Fatalf("Err: %v", src.Err())
	}
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("ids = %v, want [1 2]", ids)
	}
	if src.Next() {
		t.Error("Next after close should stay false")
	}
}
