package main

import "osulegacy/dotosu"

// MapConstants are the playfield values the game derives from [Difficulty].
type MapConstants struct {
	CircleRadius float64
	Preempt      float64 // ms an object is visible before it must be hit
	Window300    float64 // +- this
	Window100    float64
	Window50     float64
}

func GetMapConstants(d dotosu.Difficulty) MapConstants {
	od := d.OverallDifficulty
	return MapConstants{
		CircleRadius: 54.4 - 4.48*d.CircleSize,
		Preempt:      ApproachRateToPreempt(d.ApproachRate),
		Window300:    80 - 6*od,
		Window100:    140 - 8*od,
		Window50:     200 - 10*od,
	}
}

func ApproachRateToPreempt(ar float64) float64 {
	if ar < 5 {
		return 1200 + 120*(5-ar)
	} else if ar == 5 {
		return 1200
	} else {
		return 1200 - 150*(ar-5)
	}
}
