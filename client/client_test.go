package client_test

import (
	"math"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/go-wlscan/client"
)

// Proxy written the way the generator emits one.
type item struct {
	obj *client.Object
	evq *client.EventQueue
}

var itemInterface = client.Interface{
	Name:     "demo_item",
	Version:  2,
	Requests: []client.Message{{Name: "destroy", Signature: ""}},
	Events: []client.Message{
		{Name: "moved", Signature: "ff", Types: []string{"", ""}},
		{Name: "label", Signature: "s", Types: []string{""}},
	},
}

func (p *item) Ptr() client.Handle {
	if p == nil {
		return 0
	}
	return p.obj.Handle()
}

func (p *item) ID() client.ProxyID { return p.obj.ID() }
func (*item) Interface() *client.Interface { return &itemInterface }
func (*item) InterfaceName() string { return "demo_item" }
func (*item) Version() uint32 { return 2 }
func (p *item) EventQueue() *client.EventQueue { return p.evq }

func (p *item) SetEventQueue(q *client.EventQueue) {
	p.evq = q
	p.obj.Native().SetUserData(p.Ptr(), q)
}

func (*item) FromHandle(n client.Native, h client.Handle) *item {
	n.AddDispatcher(h, demoDispatcher, decodeItemEvent)
	return &item{obj: client.NewObject(n, h), evq: client.NewEventQueue()}
}

func (p *item) Destroy() {
	p.obj.Native().Marshal(p.Ptr(), 0)
	p.obj.Destroy()
}

type itemMoved struct{ X, Y float64 }
type itemLabel struct{ Text string }

type itemEvent struct {
	id    client.ProxyID
	event interface{}
}

func (itemEvent) Protocol() string { return "demo" }
func (e itemEvent) Source() client.ProxyID { return e.id }

func decodeItemEvent(n client.Native, h client.Handle, opcode uint32, args *client.ArgBuffer) (client.Event, bool) {
	var event interface{}
	switch opcode {
	case 0:
		event = itemMoved{X: args.Fixed(0).Float(), Y: args.Fixed(1).Float()}
	case 1:
		event = itemLabel{Text: args.String(0)}
	default:
		return nil, false
	}
	return itemEvent{id: client.IDOf(h), event: event}, true
}

func demoDispatcher(n client.Native, implem client.Decoder, h client.Handle, opcode uint32, args *client.ArgBuffer) {
	q := n.UserData(h)
	if q == nil || !q.Active() {
		return
	}
	if event, ok := implem(n, h, opcode, args); ok {
		q.Push(event)
	}
}

func newItem(t *testing.T) (*client.InmemNative, *item) {
	t.Helper()
	n := client.NewInmemNative()
	t.Cleanup(func() { require.NoError(t, n.Close()) })
	h := n.NewHandle(&itemInterface)
	return n, (*item)(nil).FromHandle(n, h)
}

func TestDispatch_InactiveQueueDropsEvents(t *testing.T) {
	n, p := newItem(t)
	q := client.NewEventQueue()
	p.SetEventQueue(q)

	require.True(t, n.Deliver(p.Ptr(), 0, client.FixedArg(client.FixedFromFloat(1.5)), client.FixedArg(0)))
	assert.Equal(t, 0, q.Len())
}

func TestDispatch_NoQueueIsNoop(t *testing.T) {
	n, p := newItem(t)
	assert.True(t, n.Deliver(p.Ptr(), 0, client.FixedArg(0), client.FixedArg(0)))
}

func TestDispatch_DecodesInOrder(t *testing.T) {
	n, p := newItem(t)
	q := client.NewEventQueue()
	q.Activate()
	p.SetEventQueue(q)

	n.Deliver(p.Ptr(), 0, client.FixedArg(client.FixedFromFloat(10.25)), client.FixedArg(client.FixedFromFloat(-3.5)))
	n.Deliver(p.Ptr(), 1, client.StringArg(client.CString("hello")))
	n.Deliver(p.Ptr(), 7)

	events := q.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, itemMoved{X: 10.25, Y: -3.5}, events[0].(itemEvent).event)
	assert.Equal(t, itemLabel{Text: "hello"}, events[1].(itemEvent).event)
	assert.Equal(t, p.ID(), events[0].Source())
	assert.Equal(t, "demo", events[0].Protocol())
}

func TestDeliver_WithoutDispatcher(t *testing.T) {
	n := client.NewInmemNative()
	h := n.NewHandle(&itemInterface)
	assert.False(t, n.Deliver(h, 0))
}

func TestObject_DestroyOnce(t *testing.T) {
	n, p := newItem(t)
	h := p.Ptr()

	p.Destroy()
	assert.Equal(t, 1, n.Destroyed(h))
	assert.True(t, p.obj.Destroyed())

	p.obj.Destroy()
	assert.Equal(t, 1, n.Destroyed(h))

	assert.PanicsWithValue(t, "use of destroyed proxy", func() { p.Ptr() })
	assert.Equal(t, client.IDOf(h), p.ID())
}

func TestObject_WrapDoesNotDestroy(t *testing.T) {
	n := client.NewInmemNative()
	h := n.NewHandle(&itemInterface)
	obj := client.WrapObject(n, h)
	assert.False(t, obj.Owned())

	obj.Destroy()
	assert.True(t, obj.Destroyed())
	assert.Equal(t, 0, n.Destroyed(h))
}

func TestCheckBindVersion(t *testing.T) {
	var zero *item
	assert.NotPanics(t, func() { client.CheckBindVersion(zero, 2) })
	assert.NotPanics(t, func() { client.CheckBindVersion(zero, 5) })
	assert.PanicsWithValue(t,
		"tried to bind interface demo_item with version 1 while it is only supported up to 2",
		func() { client.CheckBindVersion(zero, 1) })
}

func TestEventQueue_ConcurrentProducer(t *testing.T) {
	q := client.NewEventQueue()
	q.Activate()

	const count = 1000
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < count; i++ {
			q.Push(itemEvent{id: client.IDOf(client.Handle(i + 1))})
		}
	}()

	var got []client.Event
	for len(got) < count {
		if e, ok := q.Next(); ok {
			got = append(got, e)
		}
	}
	wg.Wait()

	for i, e := range got {
		assert.Equal(t, client.IDOf(client.Handle(i+1)), e.Source())
	}
}

func TestEventQueue_Deactivate(t *testing.T) {
	q := client.NewEventQueue()
	assert.False(t, q.Push(itemEvent{}))

	q.Activate()
	assert.True(t, q.Push(itemEvent{}))
	q.Deactivate()
	assert.False(t, q.Push(itemEvent{}))
	assert.Equal(t, 1, q.Len())

	_, ok := q.Next()
	assert.True(t, ok)
	_, ok = q.Next()
	assert.False(t, ok)
}

func TestFixed_RoundTrip(t *testing.T) {
	for raw := int64(math.MinInt32); raw <= math.MaxInt32; raw += 65537 {
		f := client.Fixed(raw)
		assert.Equal(t, f, client.FixedFromFloat(f.Float()))
	}
	for _, v := range []float64{0, 1, -1, 0.5, 123.75, -8388608, 8388607.99609375} {
		assert.Equal(t, v, client.FixedFromFloat(v).Float())
	}
	assert.InDelta(t, 0.3, client.FixedFromFloat(0.3).Float(), 1.0/512)
}

func TestFixed_Saturates(t *testing.T) {
	assert.Equal(t, client.Fixed(math.MaxInt32), client.FixedFromFloat(1e12))
	assert.Equal(t, client.Fixed(math.MinInt32), client.FixedFromFloat(-1e12))
	assert.Equal(t, client.Fixed(0), client.FixedFromFloat(math.NaN()))
	assert.Equal(t, int32(-2), client.FixedFromFloat(-2.75).Int())
}

func TestArgBuffer_Slots(t *testing.T) {
	buf := client.EncodeArgs(
		client.Int(-7),
		client.Uint(42),
		client.StringArg(nil),
		client.StringArg([]byte("caf\xffe\x00")),
		client.NullableArray(nil),
		client.ArrayArg([]byte{1, 2, 3}),
		client.ObjectHandle(9),
		client.Fd(3),
	)

	assert.Equal(t, 8, buf.Len())
	assert.Equal(t, int32(-7), buf.Int(0))
	assert.Equal(t, uint32(42), buf.Uint(1))
	assert.Equal(t, "", buf.String(2))
	assert.Equal(t, "caf�e", buf.String(3))
	assert.Nil(t, buf.Array(4))
	assert.Equal(t, []byte{1, 2, 3}, buf.Array(5))
	assert.Equal(t, client.Handle(9), buf.Object(6))
	assert.Equal(t, int32(3), buf.Fd(7))
}

func TestCString(t *testing.T) {
	assert.Equal(t, []byte("abc\x00"), client.CString("abc"))
	assert.PanicsWithValue(t, "got a string with interior nul", func() { client.CString("a\x00b") })

	assert.Nil(t, client.NullableCString(nil))
	s := "x"
	assert.Equal(t, []byte("x\x00"), client.NullableCString(&s))

	arg := client.StringArg(client.NullableCString(nil))
	assert.True(t, arg.Null)
}

func TestObjectArg_Nil(t *testing.T) {
	var p *item
	arg := client.ObjectArg(p)
	assert.True(t, arg.Null)
	assert.True(t, client.ObjectArg(nil).Null)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, int32(0), client.Deref[int32](nil))
	v := int32(5)
	assert.Equal(t, int32(5), client.Deref(&v))
}

func TestInmemNative_DuplicatesFds(t *testing.T) {
	n, p := newItem(t)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	n.Marshal(p.Ptr(), 3, client.Fd(int32(r.Fd())), client.Int(1))

	calls := n.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, uint32(3), calls[0].Opcode)
	dup := int32(calls[0].Args[0].Value)
	assert.NotEqual(t, int32(r.Fd()), dup)
	assert.Equal(t, client.Int(1), calls[0].Args[1])
}

func TestInmemNative_Constructor(t *testing.T) {
	n, p := newItem(t)
	created := n.MarshalConstructor(p.Ptr(), 1, &itemInterface, client.NewID())

	calls := n.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, created, calls[0].Created)
	assert.Equal(t, &itemInterface, calls[0].Interface)
	assert.NotEqual(t, p.Ptr(), created)
}

func TestFormatProxy(t *testing.T) {
	assert.Equal(t, "demo::demo_item::0xc", client.FormatProxy("demo", "demo_item", client.IDOf(12)))
	assert.Equal(t, "wl_output.transform(9)", client.FormatEnum("wl_output.transform", 9))
}

func TestWrapOpaque(t *testing.T) {
	n := client.NewInmemNative()
	assert.Nil(t, client.WrapOpaque(n, 0))

	h := n.NewHandle(nil)
	o := client.WrapOpaque(n, h)
	assert.Equal(t, h, o.Ptr())
	assert.Equal(t, "", o.InterfaceName())
}
