package doubleres

import (
	"github.com/oliverbestmann/byke"
)

// DoubleRes injects a read-only view of a double buffered resource into a
// system. The buffer is copied into Value by the engine, mutations never
// reach the resource stored in the world.
//
//	func displaySystem(colors doubleres.DoubleRes[Palette]) {
//		current := colors.Value.Current()
//		// ...
//	}
type DoubleRes[T any] = byke.Res[DoubleBuffer[T]]

// DoubleResMut injects mutable access to a double buffered resource into a
// system, exposing the full operation set including Swap.
//
//	func rotateSystem(colors doubleres.DoubleResMut[Palette]) {
//		colors.Apply(func(current, next *Palette) { /* ... */ })
//		colors.Swap()
//	}
type DoubleResMut[T any] = *DoubleBuffer[T]

// BufferOf looks up the DoubleBuffer resource for T in the given world.
func BufferOf[T any](world *byke.World) (*DoubleBuffer[T], bool) {
	return byke.ResourceOf[DoubleBuffer[T]](world)
}

// SwapSystem is a ready-made system that swaps the DoubleBuffer resource
// for T. Schedule it after the systems writing the next value, e.g.
//
//	app.AddSystems(byke.PostUpdate, doubleres.SwapSystem[Palette])
func SwapSystem[T any](buffer *DoubleBuffer[T]) {
	buffer.Swap()
}

// NewPlugin returns a plugin that inserts a DoubleBuffer resource with both
// slots initialized to value. If swapIn is non-nil, SwapSystem for T is
// added to that schedule as well.
func NewPlugin[T any](value T, swapIn byke.ScheduleId) byke.Plugin {
	return byke.Plugin(func(app *byke.App) {
		app.InsertResource(New(value))

		if swapIn != nil {
			app.AddSystems(swapIn, SwapSystem[T])
		}
	})
}
