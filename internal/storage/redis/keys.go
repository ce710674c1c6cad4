package redis

import "fmt"

const keyPrefix = "allinforms"

// userKey returns the Redis key holding the record stored under the normalized username.
func userKey(key string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, key)
}
