package components

import (
	"github.com/automoto/treasure-hunters/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
	// Order is the creation sequence. Collision passes visit obstacles in
	// this order, so the last overlapping obstacle decides the snap.
	Order int
}

func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// SetRect moves and resizes the object and refreshes its space cells.
func (o *ObjectData) SetRect(r gamemath.Rect) {
	o.X, o.Y, o.W, o.H = r.X, r.Y, r.W, r.H
	o.Update()
}

// Move shifts the object and refreshes its space cells.
func (o *ObjectData) Move(dx, dy float64) {
	o.X += dx
	o.Y += dy
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
