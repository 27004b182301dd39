package ranks

import "sync"

// messageCache maps channel ID to the ID of the live leaderboard message
// in that channel. Purely in-memory, rebuilt on startup by recovery.
type messageCache struct {
	mu   sync.RWMutex
	refs map[string]string
}

func newMessageCache() *messageCache {
	return &messageCache{
		refs: make(map[string]string),
	}
}

// Get returns the cached message ID for a channel, if any
func (c *messageCache) Get(channelID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.refs[channelID]
	return id, ok
}

// Set records the live message for a channel, replacing any prior ref
func (c *messageCache) Set(channelID, messageID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refs[channelID] = messageID
}

// Clear drops the cached ref for a channel
func (c *messageCache) Clear(channelID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.refs, channelID)
}
