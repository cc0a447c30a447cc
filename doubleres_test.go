package doubleres

import (
	"testing"

	"github.com/oliverbestmann/byke"
	"github.com/stretchr/testify/require"
)

func TestBufferOf(t *testing.T) {
	w := byke.NewWorld()
	w.InsertResource(New(pair{A: 10, B: 20}))

	buf, ok := BufferOf[pair](w)
	require.True(t, ok)
	require.Equal(t, pair{A: 10, B: 20}, *buf.Current())

	_, ok = BufferOf[intSlice](w)
	require.False(t, ok)
}

func TestMutableInjection(t *testing.T) {
	w := byke.NewWorld()
	w.InsertResource(New(pair{A: 10, B: 20}))

	rotate := func(buffer *DoubleBuffer[pair]) {
		buffer.Apply(func(current, next *pair) {
			next.A = current.B
			next.B = current.A
		})
		buffer.Swap()
	}

	var seen []pair
	display := func(buffer DoubleRes[pair]) {
		seen = append(seen, *buffer.Value.Current())
	}

	w.AddSystems(byke.Update, byke.System(rotate, display).Chain())

	w.RunSchedule(byke.Update)
	w.RunSchedule(byke.Update)

	require.Equal(t, []pair{{A: 20, B: 10}, {A: 10, B: 20}}, seen)
}

func TestReadOnlyInjectionIsACopy(t *testing.T) {
	w := byke.NewWorld()
	w.InsertResource(New(pair{A: 1, B: 2}))

	w.RunSystem(func(buffer DoubleRes[pair]) {
		buffer.Value.Next().A = 99
		buffer.Value.Swap()
	})

	// the resource stored in the world must be unaffected
	buf, ok := BufferOf[pair](w)
	require.True(t, ok)
	require.Equal(t, 0, buf.Index())
	require.Equal(t, pair{A: 1, B: 2}, *buf.Current())
	require.Equal(t, pair{A: 1, B: 2}, *buf.Next())
}

func TestSwapSystem(t *testing.T) {
	w := byke.NewWorld()
	w.InsertResource(New(pair{A: 1, B: 2}))

	w.RunSystem(func(buffer *DoubleBuffer[pair]) {
		buffer.Next().A = 42
	})

	w.RunSystem(SwapSystem[pair])

	buf, _ := BufferOf[pair](w)
	require.Equal(t, pair{A: 42, B: 2}, *buf.Current())
}

func TestNewPlugin(t *testing.T) {
	var app byke.App

	app.AddPlugin(NewPlugin(pair{A: 10, B: 20}, byke.PostUpdate))

	app.AddSystems(byke.Update, func(buffer DoubleResMut[pair]) {
		buffer.Apply(func(current, next *pair) {
			next.A = current.A + 1
		})
	})

	world := app.World()
	world.RunSchedule(byke.Update)
	world.RunSchedule(byke.PostUpdate)

	buf, ok := BufferOf[pair](world)
	require.True(t, ok)
	require.Equal(t, pair{A: 11, B: 20}, *buf.Current())
	require.Equal(t, pair{A: 10, B: 20}, *buf.Next())
}
