package generator

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// SeedLayout formats the calendar date used to seed the daily draw.
const SeedLayout = "20060102"

// PickDaily chooses today's topic and tone from the built-in pools.
func PickDaily(now time.Time) Selection {
	return PickDailyFrom(now, Topics, Tones)
}

// PickDailyFrom draws one topic and then one tone from a generator seeded with
// the date of now, so every call on the same calendar day returns the same pair.
// Both pools must be non-empty.
func PickDailyFrom(now time.Time, topics, tones []string) Selection {
	r := rand.New(rand.NewPCG(dateSeed(now), 0))
	topic := topics[r.IntN(len(topics))]
	tone := tones[r.IntN(len(tones))]
	return Selection{Topic: topic, Tone: tone}
}

func dateSeed(now time.Time) uint64 {
	// always 8 digits, so the parse cannot fail
	n, _ := strconv.ParseUint(now.Format(SeedLayout), 10, 64)
	return n
}
