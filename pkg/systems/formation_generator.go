// Package systems 实现每个 tick 依次运行的模拟系统
package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
)

// FormationGenerator 编队生成器
//
// 维护一个"当前编队"槽位和成员计数。当前编队未满时返回其副本，
// 满员（或尚不存在）时生成新的编队并分配新的编队ID。
type FormationGenerator struct {
	cfg       config.FormationConfig
	rng       *rand.Rand
	current   components.FormationComponent
	members   int
	lastGroup uint64
}

// NewFormationGenerator 创建编队生成器
//
// 参数:
//   - cfg: 编队配置（组大小、边距、半径范围）
//   - rng: 随机源，相同种子产生相同的编队序列
//
// 返回:
//   - *FormationGenerator: 编队生成器实例
func NewFormationGenerator(cfg config.FormationConfig, rng *rand.Rand) *FormationGenerator {
	return &FormationGenerator{
		cfg: cfg,
		rng: rng,
	}
}

// Next 返回下一个敌机应加入的编队（值拷贝）
func (g *FormationGenerator) Next(bounds game.WorldBounds) components.FormationComponent {
	if g.members > 0 && g.members < g.cfg.GroupSize {
		g.members++
		return g.current
	}

	g.current = g.generate(bounds)
	g.members = 1
	return g.current
}

func (g *FormationGenerator) generate(bounds game.WorldBounds) components.FormationComponent {
	// 出生点：场地左侧或右侧之外
	startX := bounds.HalfWidth() + g.cfg.EdgeMargin
	if g.rng.Intn(2) == 0 {
		startX = -startX
	}
	spanY := bounds.HalfHeight() - g.cfg.EdgeMargin
	startY := g.uniform(-spanY, spanY)

	// 椭圆中心：水平四分之一跨度，上半场
	offsetX := g.uniform(-bounds.Width()/4, bounds.Width()/4)
	offsetY := g.uniform(0, bounds.HalfHeight()-g.cfg.OffsetMarginY)

	radiusX := g.uniform(g.cfg.RadiusXMin, g.cfg.RadiusXMax)
	radiusY := g.cfg.RadiusY

	// 两个轴交叉耦合的初始相位角，保持与原有轨迹一致
	angle := math.Atan2(startY-offsetX, startX-offsetY)

	g.lastGroup++
	return components.FormationComponent{
		StartX:  startX,
		StartY:  startY,
		OffsetX: offsetX,
		OffsetY: offsetY,
		RadiusX: radiusX,
		RadiusY: radiusY,
		Angle:   angle,
		GroupID: g.lastGroup,
	}
}

// uniform 返回 [min, max) 内的均匀随机数，区间为空时返回 min
func (g *FormationGenerator) uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + g.rng.Float64()*(max-min)
}
