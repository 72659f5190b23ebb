package game

// InputIntent 一帧内的逻辑输入意图
// 模拟核心只消费这些意图，不关心具体按键
type InputIntent struct {
	MoveLeft         bool
	MoveRight        bool
	FireHeld         bool
	FireJustReleased bool
}

// Direction 返回水平移动方向：-1 左，1 右，0 不动
// 同时按下左右时左优先
func (i InputIntent) Direction() float64 {
	switch {
	case i.MoveLeft:
		return -1
	case i.MoveRight:
		return 1
	default:
		return 0
	}
}

// IntentProvider 输入意图来源（每帧轮询一次）
type IntentProvider interface {
	Poll() InputIntent
}

// IntentFunc 函数适配器
type IntentFunc func() InputIntent

// Poll 实现 IntentProvider
func (f IntentFunc) Poll() InputIntent {
	return f()
}
