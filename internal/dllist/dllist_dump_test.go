package dllist_test

import (
	"fmt"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/dlseq/internal/dllist"
)

func ExampleDLList_String() {
	l := dllist.New[int]()
	fmt.Println(l)

	l.PushBack(2)
	fmt.Println(l)

	l.PushFront(1)
	l.PushBack(3)
	fmt.Println(l)

	// Output:
	// []
	// [{data: 2, prev: X, next: X}]
	// [{data: 1, prev: X, next: Some} {data: 2, prev: Some, next: Some} {data: 3, prev: Some, next: X}]
}

func ExampleCursor() {
	l := dllist.New[string]()
	l.PushBack("a")
	l.PushBack("c")

	l.WithCursor(func(c *dllist.Cursor[string]) {
		c.InsertAfter("b")
		c.Next()
		*c.PeekMut() = "B"
		c.Next()
		c.Next()
		c.InsertBefore("d")
	})

	fmt.Println(l.Values())

	// Output:
	// [a B c d]
}

func TestDump(t *testing.T) {
	l := dllist.New[string]()
	l.PushBack("b")
	l.PushFront("a")

	expected := []dllist.NodeState[string]{
		{
			Value:   "a",
			HasPrev: false,
			HasNext: true,
		},
		{
			Value:   "b",
			HasPrev: true,
			HasNext: false,
		},
	}
	if !deepequal.Equal(expected, l.Dump()) {
		t.Error("dump mismatch")
		deepequal.SideBySide(t, "dump", expected, l.Dump())
	}

	l.WithCursor(func(c *dllist.Cursor[string]) {
		c.Take()
	})

	expected = []dllist.NodeState[string]{
		{
			Value:   "b",
			HasPrev: false,
			HasNext: false,
		},
	}
	if !deepequal.Equal(expected, l.Dump()) {
		t.Error("dump mismatch after take")
		deepequal.SideBySide(t, "dump", expected, l.Dump())
	}
}
