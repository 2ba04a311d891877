package callbacklist_test

import (
	"context"
	"testing"

	"github.com/mediabuff/eventpp/pkg/eventpp/callbacklist"
)

func TestDispatcher1InvokesWithAssertedArg(t *testing.T) {
	list := callbacklist.NewCallbackList1[string, struct{}](callbacklist.DefaultListPolicy())

	var got string
	list.Append(func(s string) struct{} { got = s; return struct{}{} })

	d := callbacklist.AsDispatcher1(list)
	if err := d.Invoke(context.Background(), []any{"hello"}); err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}
	if got != "hello" {
		t.Fatalf("got = %q, want %q", got, "hello")
	}
}

func TestDispatcher1RejectsWrongArgCount(t *testing.T) {
	list := callbacklist.NewCallbackList1[string, struct{}](callbacklist.DefaultListPolicy())
	d := callbacklist.AsDispatcher1(list)

	if err := d.Invoke(context.Background(), []any{}); err == nil {
		t.Fatal("expected error for wrong argument count")
	}
}

func TestDispatcher1RejectsWrongArgType(t *testing.T) {
	list := callbacklist.NewCallbackList1[string, struct{}](callbacklist.DefaultListPolicy())
	d := callbacklist.AsDispatcher1(list)

	if err := d.Invoke(context.Background(), []any{42}); err == nil {
		t.Fatal("expected error for mismatched argument type")
	}
}

func TestDispatcher0RejectsCancelledContext(t *testing.T) {
	list := callbacklist.NewCallbackList0[struct{}](callbacklist.DefaultListPolicy())
	d := callbacklist.AsDispatcher0(list)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := d.Invoke(ctx, nil); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestDispatcher2And3(t *testing.T) {
	list2 := callbacklist.NewCallbackList2[int, int, struct{}](callbacklist.DefaultListPolicy())
	var sum2 int
	list2.Append(func(a, b int) struct{} { sum2 = a + b; return struct{}{} })
	if err := callbacklist.AsDispatcher2(list2).Invoke(context.Background(), []any{2, 3}); err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}
	if sum2 != 5 {
		t.Fatalf("sum2 = %d, want 5", sum2)
	}

	list3 := callbacklist.NewCallbackList3[int, int, int, struct{}](callbacklist.DefaultListPolicy())
	var sum3 int
	list3.Append(func(a, b, c int) struct{} { sum3 = a + b + c; return struct{}{} })
	if err := callbacklist.AsDispatcher3(list3).Invoke(context.Background(), []any{1, 2, 3}); err != nil {
		t.Fatalf("Invoke returned error: %v", err)
	}
	if sum3 != 6 {
		t.Fatalf("sum3 = %d, want 6", sum3)
	}
}
