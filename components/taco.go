package components

import "github.com/yohamta/donburi"

type TacoData struct {
	Rotation float64
}

var Taco = donburi.NewComponentType[TacoData]()
