package components

// ScaleComponent 存储实体级别的缩放因子
// 同时用于表现层绘制和碰撞盒计算
//
// 缩放因子的符号表示朝向：敌机激光的 ScaleY 为负值，表示图像上下翻转。
// 碰撞盒计算只使用缩放的绝对值。
type ScaleComponent struct {
	// ScaleX X轴缩放因子（1.0 = 原始大小，0.5 = 50%）
	ScaleX float64

	// ScaleY Y轴缩放因子（1.0 = 原始大小，负值表示翻转）
	ScaleY float64
}
