package database

import (
	"github.com/studyping/slack-study-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db              *DB
	channelPrefRepo contract.ChannelPrefRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:              db,
		channelPrefRepo: newChannelPrefRepo(db.conn),
	}
}

// ChannelPref returns the channel preference repository
func (i *instance) ChannelPref() contract.ChannelPrefRepo {
	return i.channelPrefRepo
}
