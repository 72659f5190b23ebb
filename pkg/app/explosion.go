package app

import "github.com/decker502/invaders/pkg/game"

// explosionDuration 爆炸动画时长（16 帧 × 0.05 秒）
const explosionDuration = 0.8

// explosion 正在播放的爆炸
type explosion struct {
	X, Y     float64
	age      float64
	duration float64
}

// Progress 播放进度 [0, 1]
func (e *explosion) Progress() float64 {
	if e.duration <= 0 {
		return 1
	}
	p := e.age / e.duration
	if p > 1 {
		return 1
	}
	return p
}

// explosionTracker 管理爆炸动画的播放和回收
type explosionTracker struct {
	duration float64
	active   []*explosion
}

func newExplosionTracker(duration float64) *explosionTracker {
	return &explosionTracker{duration: duration}
}

// Add 在请求位置开始播放一个爆炸
func (t *explosionTracker) Add(request game.ExplosionRequest) {
	t.active = append(t.active, &explosion{X: request.X, Y: request.Y, duration: t.duration})
}

// Update 推进动画并移除播放完毕的爆炸
func (t *explosionTracker) Update(deltaTime float64) {
	kept := t.active[:0]
	for _, e := range t.active {
		e.age += deltaTime
		if e.age < e.duration {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(t.active); i++ {
		t.active[i] = nil
	}
	t.active = kept
}

// Active 返回正在播放的爆炸
func (t *explosionTracker) Active() []*explosion {
	return t.active
}
