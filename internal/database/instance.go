package database

import (
	"github.com/diegoclair/report-relay-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	dispatchRepo contract.DispatchRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.dispatchRepo = newDispatchRepository(i.db.conn)
}

// Dispatch returns the dispatch ledger repository
func (i *instance) Dispatch() contract.DispatchRepo {
	return i.dispatchRepo
}
