package components

// PlayerFireComponent 玩家开火状态
// Ready 为 true 时按下开火会发射；发射后变为 false，直到松开开火键
type PlayerFireComponent struct {
	Ready bool
}
