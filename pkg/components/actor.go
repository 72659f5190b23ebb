package components

import "github.com/decker502/invaders/pkg/types"

// ActorComponent 标识实体是玩家还是敌机
type ActorComponent struct {
	Kind types.ActorKind
}
