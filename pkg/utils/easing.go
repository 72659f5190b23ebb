package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的进度。用于爆炸等纯表现动画。

// EaseOutCubic 三次方缓出，开始快结束慢
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-clamp01(t), 3)
}

// EaseInQuad 二次方缓入，开始慢结束快
func EaseInQuad(t float64) float64 {
	t = clamp01(t)
	return t * t
}

// Lerp 在 from 和 to 之间线性插值
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
