package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can take either a real
// client, a miniredis-backed one or a redismock client.
type Client interface {
	redis.UniversalClient
}
