package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// RandomData is the seeded source for cosmetic randomness (sparks, victory
// particles). Gameplay outcomes never read it.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
