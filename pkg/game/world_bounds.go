// Package game 保存模拟核心各组件独占的状态结构
//
// 每个状态结构只属于一个系统，其他系统只能通过它的方法修改。
// 状态在构造 GameScene 时创建，以指针形式传入各系统的构造函数。
package game

import (
	"errors"
	"fmt"
)

// ErrInvalidBounds 表示场地尺寸不合法（启动期致命错误）
var ErrInvalidBounds = errors.New("invalid world bounds")

// WorldBounds 场地范围，启动时确定，之后只读
// 坐标原点位于场地中心
type WorldBounds struct {
	width  float64
	height float64
}

// NewWorldBounds 创建场地范围
//
// 参数:
//   - width, height: 场地尺寸，必须为正数
//
// 返回:
//   - WorldBounds: 场地范围
//   - error: 尺寸不合法时返回包装了 ErrInvalidBounds 的错误
func NewWorldBounds(width, height float64) (WorldBounds, error) {
	if width <= 0 || height <= 0 {
		return WorldBounds{}, fmt.Errorf("%w: %.1fx%.1f", ErrInvalidBounds, width, height)
	}
	return WorldBounds{width: width, height: height}, nil
}

// Width 场地宽度
func (b WorldBounds) Width() float64 { return b.width }

// Height 场地高度
func (b WorldBounds) Height() float64 { return b.height }

// HalfWidth 场地半宽
func (b WorldBounds) HalfWidth() float64 { return b.width / 2 }

// HalfHeight 场地半高
func (b WorldBounds) HalfHeight() float64 { return b.height / 2 }

// Left 左边界X坐标
func (b WorldBounds) Left() float64 { return -b.width / 2 }

// Right 右边界X坐标
func (b WorldBounds) Right() float64 { return b.width / 2 }

// Top 上边界Y坐标
func (b WorldBounds) Top() float64 { return b.height / 2 }

// Bottom 下边界Y坐标
func (b WorldBounds) Bottom() float64 { return -b.height / 2 }
