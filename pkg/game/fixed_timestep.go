package game

import "math"

// FixedTimestep 以 tick 计数的周期调度
//
// 周期换算成整数个 tick，保证节奏与帧率无关且没有浮点累积误差。
// 例如 60Hz 下 1.0 秒的周期为 60 个 tick，第 60、120、180... 个 tick 触发。
type FixedTimestep struct {
	period  int
	elapsed int
}

// NewFixedTimestep 创建周期调度
//
// 参数:
//   - interval: 周期（秒）
//   - timeStep: 基础时间步长（秒）
func NewFixedTimestep(interval, timeStep float64) *FixedTimestep {
	period := int(math.Round(interval / timeStep))
	if period < 1 {
		period = 1
	}
	return &FixedTimestep{period: period}
}

// Tick 推进一个 tick，返回本 tick 是否触发
func (f *FixedTimestep) Tick() bool {
	f.elapsed++
	if f.elapsed >= f.period {
		f.elapsed = 0
		return true
	}
	return false
}

// Period 返回周期的 tick 数
func (f *FixedTimestep) Period() int {
	return f.period
}

// Clock 固定步长模拟时钟
//
// 用累加器把实际帧间隔换算成整数个 tick；单次最多推进 maxTicks 个，
// 超出部分直接丢弃，避免卡顿后的追帧螺旋。
type Clock struct {
	timeStep    float64
	maxTicks    int
	accumulator float64
	ticks       uint64
}

// NewClock 创建模拟时钟
func NewClock(timeStep float64, maxTicks int) *Clock {
	if maxTicks < 1 {
		maxTicks = 1
	}
	return &Clock{timeStep: timeStep, maxTicks: maxTicks}
}

// Accumulate 累加帧间隔，返回本帧需要执行的 tick 数
func (c *Clock) Accumulate(deltaTime float64) int {
	if deltaTime > 0 {
		c.accumulator += deltaTime
	}
	// 容忍极小的浮点误差，避免 60 个 1/60 累加后差一点不足 1 个 tick
	const epsilon = 1e-9
	n := int((c.accumulator + epsilon) / c.timeStep)
	if n > c.maxTicks {
		n = c.maxTicks
		c.accumulator = 0
		return n
	}
	c.accumulator -= float64(n) * c.timeStep
	if c.accumulator < 0 {
		c.accumulator = 0
	}
	return n
}

// Advance 进入下一个 tick，模拟时间随之前进一个步长
func (c *Clock) Advance() {
	c.ticks++
}

// Ticks 返回已完成的 tick 数
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Now 返回当前模拟时间（秒）
func (c *Clock) Now() float64 {
	return float64(c.ticks) * c.timeStep
}

// TimeStep 返回基础时间步长（秒）
func (c *Clock) TimeStep() float64 {
	return c.timeStep
}
