package team

import (
	"fmt"

	"github.com/xaca/triviaboard-go/internal/dependencies/random"
	"github.com/xaca/triviaboard-go/internal/model"
)

// Team names are random two-word "Adjective Noun" phrases, capitalized
// and space-separated, unique within a session.

var nameAdjectives = []string{
	"Amber", "Bold", "Brave", "Bright", "Calm", "Clever", "Cosmic",
	"Crimson", "Daring", "Eager", "Electric", "Fearless", "Fierce",
	"Gentle", "Golden", "Happy", "Hidden", "Jolly", "Keen", "Lucky",
	"Mighty", "Noble", "Proud", "Quick", "Quiet", "Rapid", "Royal",
	"Silent", "Silver", "Sly", "Swift", "Turbo", "Vivid", "Wild",
	"Witty", "Zesty",
}

var nameNouns = []string{
	"Badger", "Bison", "Cheetah", "Comet", "Condor", "Coyote", "Dolphin",
	"Dragon", "Eagle", "Falcon", "Ferret", "Fox", "Gecko", "Hawk",
	"Heron", "Jaguar", "Kraken", "Lemur", "Lynx", "Mammoth", "Mantis",
	"Meteor", "Narwhal", "Ocelot", "Orca", "Otter", "Panther", "Phoenix",
	"Puma", "Raven", "Sparrow", "Tiger", "Toucan", "Viper", "Walrus",
	"Wolf",
}

// maxAttemptsPerName bounds collision retries. The adjective x noun
// space is large enough that hitting this bound means something is
// pathologically wrong, so fail loudly instead of looping forever.
const maxAttemptsPerName = 100

// generateName returns one random two-word team name
func generateName(rnd random.Random) string {
	adj := nameAdjectives[rnd.Intn(len(nameAdjectives))]
	noun := nameNouns[rnd.Intn(len(nameNouns))]
	return adj + " " + noun
}

// generateUniqueNames returns count pairwise-distinct team names.
// Fails with ErrNameSpaceExhausted if count exceeds the name space or
// the retry budget runs out.
func generateUniqueNames(rnd random.Random, count int) ([]string, error) {
	space := len(nameAdjectives) * len(nameNouns)
	if count > space {
		return nil, fmt.Errorf("%w: %d requested, %d possible", model.ErrNameSpaceExhausted, count, space)
	}

	seen := make(map[string]bool, count)
	names := make([]string, 0, count)
	budget := count * maxAttemptsPerName

	for len(names) < count {
		if budget == 0 {
			return nil, fmt.Errorf("%w: gave up after %d attempts", model.ErrNameSpaceExhausted, count*maxAttemptsPerName)
		}
		budget--

		name := generateName(rnd)
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}
