package components

// SpeedComponent 存储实体的线速度标量（像素/秒）
// 方向由各自的运动系统决定，不存储速度向量
type SpeedComponent struct {
	Value float64
}
