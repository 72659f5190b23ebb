package components

// FormationComponent 敌机编队的椭圆轨迹模板
//
// 同一编队的敌机在分配时拿到完全相同的副本（偏移、半径、初始相位角相同）。
// 组件归属于单个敌机，之后只由该敌机的运动更新 Angle，不与其他实体共享。
type FormationComponent struct {
	StartX, StartY   float64 // 出生点
	OffsetX, OffsetY float64 // 椭圆中心
	RadiusX, RadiusY float64 // 椭圆半径
	Angle            float64 // 当前相位角（弧度）
	GroupID          uint64  // 编队ID，单调递增，不同编队之间不重复
}
