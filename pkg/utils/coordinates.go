package utils

import "math"

// coordinates.go 提供模拟坐标和屏幕坐标之间的转换
//
// # 坐标系统概述
//
//   - **模拟坐标**：原点位于场地中心，X 轴向右，Y 轴向上（模拟核心使用）
//   - **屏幕坐标**：原点位于窗口左上角，X 轴向右，Y 轴向下（Ebitengine 默认）
//
// # 核心转换公式
//
//	screenX = worldX + width/2
//	screenY = height/2 - worldY

// WorldToScreen 将模拟坐标转换为屏幕坐标
//
// 参数:
//   - worldX, worldY: 模拟坐标（中心原点）
//   - width, height: 场地尺寸
//
// 返回:
//   - screenX, screenY: 屏幕坐标（左上角原点）
func WorldToScreen(worldX, worldY, width, height float64) (screenX, screenY float64) {
	return worldX + width/2, height/2 - worldY
}

// ScaledSize 计算逻辑尺寸乘以缩放绝对值后的实际尺寸
// 缩放的符号只表示朝向，不影响尺寸
func ScaledSize(width, height, scaleX, scaleY float64) (w, h float64) {
	return width * math.Abs(scaleX), height * math.Abs(scaleY)
}

// ScreenRect 计算中心对齐实体在屏幕上的左上角和尺寸
//
// 参数:
//   - worldX, worldY: 实体中心的模拟坐标
//   - w, h: 实体实际尺寸（已缩放）
//   - width, height: 场地尺寸
//
// 返回:
//   - x, y: 左上角屏幕坐标
//   - w, h: 尺寸（原样返回，便于直接传给绘制函数）
func ScreenRect(worldX, worldY, w, h, width, height float64) (x, y, rw, rh float64) {
	cx, cy := WorldToScreen(worldX, worldY, width, height)
	return cx - w/2, cy - h/2, w, h
}
