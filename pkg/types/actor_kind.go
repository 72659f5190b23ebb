// Package types 定义共享的基础类型
package types

// ActorKind 定义角色的种类
// 所有系统根据该标签分支，而不是根据实体的组件组合推断身份
type ActorKind int

const (
	// ActorUnknown 未知角色
	ActorUnknown ActorKind = iota
	// ActorPlayer 玩家飞船（全局唯一）
	ActorPlayer
	// ActorEnemy 敌机（可多个）
	ActorEnemy
)

// String 返回角色种类名称（用于日志）
func (k ActorKind) String() string {
	switch k {
	case ActorPlayer:
		return "player"
	case ActorEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Owner 定义激光的归属方
// 归属方决定激光的飞行方向以及可以命中的目标
type Owner int

const (
	// OwnerNone 无归属（非法值）
	OwnerNone Owner = iota
	// OwnerPlayer 玩家发射的激光：向上飞行，只能命中敌机
	OwnerPlayer
	// OwnerEnemy 敌机发射的激光：向下飞行，只能命中玩家
	OwnerEnemy
)

// String 返回归属方名称（用于日志）
func (o Owner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	default:
		return "none"
	}
}

// Direction 返回该归属方激光在 Y 轴上的飞行方向
// 坐标系原点在场地中心，Y 轴向上
func (o Owner) Direction() float64 {
	switch o {
	case OwnerPlayer:
		return 1
	case OwnerEnemy:
		return -1
	default:
		return 0
	}
}

// CanHit 判断该归属方的激光能否命中指定种类的角色
func (o Owner) CanHit(kind ActorKind) bool {
	switch o {
	case OwnerPlayer:
		return kind == ActorEnemy
	case OwnerEnemy:
		return kind == ActorPlayer
	default:
		return false
	}
}
