package utils

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// InitSnowflake sets the node number ids are generated with. It must run
// before the first NextID call to take effect.
func InitSnowflake(nodeID int64) error {
	var err error
	nodeOnce.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// NextID returns a new unique, roughly time-ordered id.
func NextID() int64 {
	// 如果未初始化，使用默认节点；已初始化时这里什么也不做
	_ = InitSnowflake(1)
	return node.Generate().Int64()
}
