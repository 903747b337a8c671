package components

import (
	cfg "github.com/automoto/skateturtle/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv collider that follows an entity.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broadphase grid every collider lives in.
var Space = donburi.NewComponentType[resolv.Space]()

// Follow places the collider at anchor (x, y) offset by box and refreshes its cells.
func (o *ObjectData) Follow(x, y float64, box cfg.Rect) {
	o.X = x + box.X
	o.Y = y + box.Y
	o.Update()
}
