package game

// PlayerState 玩家生命周期状态
//
// 两个状态：存活 和 复活冷却。
// 被击中时进入冷却，记录死亡时间；now ≥ 死亡时间 + 复活延迟 后才允许复活。
type PlayerState struct {
	alive        bool
	lastDeath    float64
	hasDied      bool
	respawnDelay float64
}

// NewPlayerState 创建玩家状态（初始为未出生）
func NewPlayerState(respawnDelay float64) *PlayerState {
	return &PlayerState{respawnDelay: respawnDelay}
}

// IsAlive 玩家是否存活
func (p *PlayerState) IsAlive() bool { return p.alive }

// LastDeath 最近一次死亡的模拟时间，从未死亡时第二个返回值为 false
func (p *PlayerState) LastDeath() (float64, bool) { return p.lastDeath, p.hasDied }

// RespawnDelay 复活延迟（秒）
func (p *PlayerState) RespawnDelay() float64 { return p.respawnDelay }

// Shot 记录玩家被击中
func (p *PlayerState) Shot(now float64) {
	p.alive = false
	p.lastDeath = now
	p.hasDied = true
}

// Spawned 记录玩家已生成
func (p *PlayerState) Spawned() {
	p.alive = true
}

// CanRespawn 判断当前是否允许生成玩家
// 从未死亡时立即允许；否则要求 now ≥ lastDeath + respawnDelay
func (p *PlayerState) CanRespawn(now float64) bool {
	if p.alive {
		return false
	}
	if !p.hasDied {
		return true
	}
	return now >= p.lastDeath+p.respawnDelay
}
