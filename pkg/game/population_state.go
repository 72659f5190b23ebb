package game

// PopulationState 敌机数量状态
// 由敌机生成系统拥有；战斗系统只通过 EnemyDestroyed 通知数量变化
type PopulationState struct {
	active int
	cap    int
}

// NewPopulationState 创建敌机数量状态
func NewPopulationState(cap int) *PopulationState {
	if cap < 0 {
		cap = 0
	}
	return &PopulationState{cap: cap}
}

// Active 当前存活的敌机数量（包括本 tick 已请求生成的）
func (p *PopulationState) Active() int { return p.active }

// Cap 敌机上限
func (p *PopulationState) Cap() int { return p.cap }

// CanSpawn 是否还能生成敌机
func (p *PopulationState) CanSpawn() bool { return p.active < p.cap }

// EnemySpawned 记录生成了一个敌机
func (p *PopulationState) EnemySpawned() { p.active++ }

// EnemyDestroyed 记录销毁了一个敌机
func (p *PopulationState) EnemyDestroyed() {
	if p.active > 0 {
		p.active--
	}
}
