// ABOUTME: BenchStatus is the singleton resting state for both profiles.
// ABOUTME: Each profile's flag toggles independently.

package models

type BenchStatus struct {
	Knight bool
	Hornet bool
}

func (b BenchStatus) Resting(p Profile) bool {
	if p == Knight {
		return b.Knight
	}
	return b.Hornet
}

func (b *BenchStatus) SetResting(p Profile, resting bool) {
	if p == Knight {
		b.Knight = resting
		return
	}
	b.Hornet = resting
}
