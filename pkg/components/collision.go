package components

// CollisionComponent 定义实体的逻辑碰撞尺寸
// 实际碰撞盒 = 逻辑尺寸 × |ScaleComponent|，中心对齐实体位置
type CollisionComponent struct {
	Width  float64 // 逻辑宽度（像素）
	Height float64 // 逻辑高度（像素）
}
