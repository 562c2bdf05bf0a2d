// Package snowflake issues the ids that tag each attack in logs, events and results.
package snowflake

import (
	"fmt"
	"os"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/zeromicro/go-zero/core/hash"
)

// node ids fit in bwmarrin's default 10 node bits
const maxNodeID = -1 ^ (-1 << 10)

var generator *snowflake.Node

// nodeID derives a stable id from the host name and process id.
func nodeID() int64 {
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	sum := hash.Hash([]byte(fmt.Sprintf("%s/%d", host, os.Getpid())))
	return int64(sum % (maxNodeID + 1))
}

func init() {
	generator, _ = snowflake.NewNode(nodeID())
}

func GenerateString() string {
	return generator.Generate().String()
}

// Time returns the moment an id produced by this package was issued.
func Time(id string) (time.Time, error) {
	parsed, err := snowflake.ParseString(id)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(parsed.Time()), nil
}
