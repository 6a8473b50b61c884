package harpocrates

import "sync"

type capabilityKey struct {
	resource  Handle
	principal Address
}

// CapabilityTable records which principal may request decryption of which
// ciphertext handle. Grants are additive only: there is no revoke, matching
// the store's write-once record lifecycle.
type CapabilityTable struct {
	lock   sync.RWMutex
	grants map[capabilityKey]bool
}

func NewCapabilityTable() *CapabilityTable {
	return &CapabilityTable{
		lock:   sync.RWMutex{},
		grants: make(map[capabilityKey]bool),
	}
}

func (t *CapabilityTable) Grant(resource Handle, principal Address) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.grants[capabilityKey{resource: resource, principal: principal}] = true
}

func (t *CapabilityTable) Granted(resource Handle, principal Address) bool {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return t.grants[capabilityKey{resource: resource, principal: principal}]
}

// Principals returns every principal holding a capability for the resource.
func (t *CapabilityTable) Principals(resource Handle) []Address {
	t.lock.RLock()
	defer t.lock.RUnlock()

	result := make([]Address, 0)
	for key, granted := range t.grants {
		if !granted || key.resource != resource {
			continue
		}
		result = append(result, key.principal)
	}
	return result
}
