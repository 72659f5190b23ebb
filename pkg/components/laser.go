package components

import "github.com/decker502/invaders/pkg/types"

// LaserComponent 标识实体为激光，并记录其归属方
// 归属方决定飞行方向以及可以命中的目标
type LaserComponent struct {
	Owner types.Owner
}
