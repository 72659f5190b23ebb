package components

// PositionComponent 存储实体在场地中的位置
// 坐标系原点位于场地中心，X 轴向右，Y 轴向上
type PositionComponent struct {
	X float64 // 中心点X坐标
	Y float64 // 中心点Y坐标
	Z float64 // 绘制深度，数值越大越靠前（仅供表现层排序使用）
}
