// Package generator defines the types shared by the vanity mint search:
// the job description, accepted results and run statistics.
package generator

import (
	"fmt"
	"runtime"
)

// SuffixType identifies which launchpad a mint address targets.
type SuffixType string

const (
	SuffixPump SuffixType = "pump" // pump.fun mints
	SuffixBonk SuffixType = "bonk" // letsbonk.fun mints
)

// ParseSuffixType validates a suffix name from the CLI.
func ParseSuffixType(s string) (SuffixType, error) {
	switch SuffixType(s) {
	case SuffixPump, SuffixBonk:
		return SuffixType(s), nil
	default:
		return "", fmt.Errorf("unrecognized suffix type %q (want pump or bonk)", s)
	}
}

// Job describes one search run. Immutable once the dispatcher starts.
type Job struct {
	Suffix    string // required address tail, case-sensitive Base58
	Type      SuffixType
	Count     int  // number of addresses to find, >= 1
	BatchSize int  // upload batch size, 0 = single upload at end of run
	SaveLocal bool // append matches to a local backup file
	Workers   int  // parallel search goroutines
}

// NewJob validates the parameters and resolves the worker default once.
func NewJob(typ SuffixType, count, batchSize, workers int, saveLocal bool) (*Job, error) {
	if _, err := ParseSuffixType(string(typ)); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("invalid count %d (must be >= 1)", count)
	}
	if batchSize < 0 {
		return nil, fmt.Errorf("invalid batch size %d (must be >= 0)", batchSize)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Job{
		Suffix:    string(typ),
		Type:      typ,
		Count:     count,
		BatchSize: batchSize,
		SaveLocal: saveLocal,
		Workers:   workers,
	}, nil
}

// Result is one accepted vanity keypair.
type Result struct {
	Address      string // Base58-encoded public key, ends with the job suffix
	PrivateKey   string // Base58-encoded 64-byte keypair (wallet import format)
	Type         SuffixType
	AttemptIndex uint64 // global attempt count when the match was accepted
	WorkerID     int
}

// Stats is a point-in-time snapshot of a running search.
type Stats struct {
	Attempts    uint64  // total keypairs generated so far
	Remaining   int64   // matches still to be found
	HashRate    float64 // attempts per second
	ElapsedSecs float64
}
