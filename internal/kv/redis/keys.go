package redis

import "fmt"

// Key prefix for all client state
const keyPrefix = "rpsduel"

// storeKey returns the namespaced Redis key for a store key
func storeKey(key string) string {
	return fmt.Sprintf("%s:kv:%s", keyPrefix, key)
}
