package abtest

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === ExperimentKey ===

// ExperimentKey uniquely identifies a reproducible experiment run.
// Two runs with the same ExperimentKey and identical configuration
// MUST produce bit-for-bit identical datasets and estimates.
type ExperimentKey int64

// NewExperimentKey creates an ExperimentKey from a seed value.
func NewExperimentKey(seed int64) ExperimentKey {
	return ExperimentKey(seed)
}

// Replication derives the key for replication r of a replication study.
// Distinct replications get distinct, deterministic keys.
func (k ExperimentKey) Replication(r int) ExperimentKey {
	return ExperimentKey(int64(k) ^ fnv1a64(fmt.Sprintf("replication_%d", r)))
}

// === Subsystem Constants ===

// Each noise source in the simulator draws from its own subsystem so that
// changing the number of draws in one stream never perturbs another.
const (
	// SubsystemControlPre seeds the control group's pre-period draws.
	SubsystemControlPre = "control_pre"

	// SubsystemControlIncrement seeds the control group's post-period increments.
	SubsystemControlIncrement = "control_increment"

	// SubsystemTestPre seeds the test group's pre-period draws.
	SubsystemTestPre = "test_pre"

	// SubsystemTestIncrement seeds the test group's post-period increments.
	SubsystemTestIncrement = "test_increment"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        ExperimentKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from an ExperimentKey.
func NewPartitionedRNG(key ExperimentKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the ExperimentKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() ExperimentKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
