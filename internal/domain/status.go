package domain

import "math"

// Status is a pet's well-being snapshot. Higher hungry is worse.
type Status struct {
	Hungry uint32
	Health uint32
	Happy  uint32
}

var (
	FullStatus  = Status{Hungry: 0, Health: 100, Happy: 100}
	DeathStatus = Status{Hungry: 80, Health: 0, Happy: 0}
)

const (
	DecayPerMinute  uint64 = 5
	decayUnitMillis uint64 = 60_000
)

// Total is health plus happy minus hungry, floored at zero.
func (s Status) Total() uint32 {
	total := int64(s.Health) + int64(s.Happy) - int64(s.Hungry)
	switch {
	case total < 0:
		return 0
	case total > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(total)
}

func (s Status) Tier() Tier {
	return TierFor(s.Total())
}

// Boost lowers hunger and raises health and happiness by n, saturating.
func (s Status) Boost(n uint32) Status {
	return Status{
		Hungry: subSat32(s.Hungry, uint64(n)),
		Health: addSat32(s.Health, uint64(n)),
		Happy:  addSat32(s.Happy, uint64(n)),
	}
}

// Pet is the stored status record for one token.
type Pet struct {
	TokenID     TokenID
	Status      Status
	LastEatenAt Timestamp
}

// Current projects the stored snapshot to now. A pet that has never eaten
// reads as all zeros.
func (p Pet) Current(now Timestamp) Status {
	if p.LastEatenAt.IsZero() {
		return Status{}
	}

	minutes := p.LastEatenAt.Since(now) / decayUnitMillis
	decay := minutes * DecayPerMinute

	return Status{
		Hungry: addSat32(p.Status.Hungry, decay),
		Health: subSat32(p.Status.Health, decay),
		Happy:  subSat32(p.Status.Happy, decay),
	}
}

type FeedOutcome string

const (
	OutcomeBoost FeedOutcome = "boost"
	OutcomeFull  FeedOutcome = "full"
	OutcomeLucky FeedOutcome = "lucky"
	OutcomeDeath FeedOutcome = "death"
)

const (
	FeedRollMax uint8  = 100
	boostAmount uint32 = 30
	luckyAmount uint32 = 50
)

func OutcomeForRoll(roll uint8) FeedOutcome {
	switch {
	case roll < 25:
		return OutcomeBoost
	case roll < 50:
		return OutcomeFull
	case roll < 75:
		return OutcomeLucky
	default:
		return OutcomeDeath
	}
}

func (o FeedOutcome) Apply(base Status) Status {
	switch o {
	case OutcomeBoost:
		return base.Boost(boostAmount)
	case OutcomeFull:
		return FullStatus
	case OutcomeLucky:
		return base.Boost(luckyAmount)
	case OutcomeDeath:
		return DeathStatus
	default:
		return base
	}
}

func addSat32(v uint32, n uint64) uint32 {
	sum := uint64(v) + n
	if sum > math.MaxUint32 || sum < n {
		return math.MaxUint32
	}
	return uint32(sum)
}

func subSat32(v uint32, n uint64) uint32 {
	if n >= uint64(v) {
		return 0
	}
	return v - uint32(n)
}
