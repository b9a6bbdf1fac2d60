// ABOUTME: Profile identities partitioning all personal data.
// ABOUTME: Exactly two fixed profiles exist; nothing creates or destroys them.

package models

import (
	"errors"
	"fmt"
)

type Profile string

const (
	Knight Profile = "Knight"
	Hornet Profile = "Hornet"
)

var ErrBadProfile = errors.New("unknown profile")

// Profiles returns both profiles in fixed order.
func Profiles() []Profile {
	return []Profile{Knight, Hornet}
}

// ParseProfile accepts exactly "Knight" or "Hornet".
func ParseProfile(s string) (Profile, error) {
	switch Profile(s) {
	case Knight:
		return Knight, nil
	case Hornet:
		return Hornet, nil
	}
	return "", fmt.Errorf("%w: %q (want Knight or Hornet)", ErrBadProfile, s)
}

// Other returns the companion profile.
func (p Profile) Other() Profile {
	if p == Knight {
		return Hornet
	}
	return Knight
}

func (p Profile) String() string {
	return string(p)
}
