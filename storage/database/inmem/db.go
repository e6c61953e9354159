package inmemdb

import (
	"sync"

	"github.com/trezcool/synapse/core/certificate"
	"github.com/trezcool/synapse/core/profile"
)

type (
	DB struct {
		profile     *profileTable
		certificate *certificateTable
	}

	profileTable struct {
		table map[string]*profile.Profile
		order []string // ids in insertion order
		mutex sync.RWMutex
	}

	certificateTable struct {
		table []certificate.Certificate // insertion order
		mutex sync.RWMutex
	}
)

// Open returns an empty database. Use Seed to load the default data.
func Open() *DB {
	return &DB{
		profile:     &profileTable{table: make(map[string]*profile.Profile)},
		certificate: &certificateTable{},
	}
}
