package util

import (
	"fmt"

	"blackjack-server/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Lucky", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand",
	"Ultimate", "Prime", "Alpha", "Bold", "Sly", "Daring", "Charging", "Bouncing",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo", "Giraffe",
	"Antelope", "Lion", "Tiger", "Bear", "Otter", "Dolphin", "Porcupine", "Hedgehog",
	"Chipmunk", "Okapi", "Eagle", "Wolf", "Fox", "Armadillo", "Rhino", "Panda",
}

var nameRNG rng.Generator = rng.Crypto{}

// RandomName returns a random display name by combining an adjective with an animal.
// Used when a client joins a room without providing a name.
func RandomName() string {
	adjective := adjectives[nameRNG.Intn(len(adjectives))]
	animal := animals[nameRNG.Intn(len(animals))]

	return fmt.Sprintf("%s %s", adjective, animal)
}
