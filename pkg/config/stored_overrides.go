package config

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// 存储路径常量
const (
	overridesObject   = "config"
	overridesProperty = "simulation"
)

// LoadStoredOverrides 从 gdata 用户数据目录合并本地配置覆盖
//
// 覆盖内容是一段 YAML，只需包含要修改的字段，未出现的字段保持原值。
// manager 为 nil 或覆盖不存在时不做任何修改（降级模式）。
//
// 参数:
//   - manager: gdata 跨平台存储管理器，可为 nil
//   - cfg: 已加载的配置，覆盖直接写入其中
//
// 返回:
//   - bool: 是否应用了覆盖
//   - error: 读取、解析或验证失败时返回错误
func LoadStoredOverrides(manager *gdata.Manager, cfg *SimulationConfig) (bool, error) {
	if manager == nil || cfg == nil {
		return false, nil
	}
	if !manager.ObjectPropExists(overridesObject, overridesProperty) {
		return false, nil
	}

	data, err := manager.LoadObjectProp(overridesObject, overridesProperty)
	if err != nil {
		return false, fmt.Errorf("failed to load config overrides: %w", err)
	}

	merged := *cfg
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return false, fmt.Errorf("failed to unmarshal config overrides: %w", err)
	}
	if err := merged.Validate(); err != nil {
		return false, err
	}

	*cfg = merged
	return true, nil
}

// StoreOverrides 把完整配置作为覆盖写入 gdata
//
// manager 为 nil 时返回 nil（降级模式，不报错）
func StoreOverrides(manager *gdata.Manager, cfg *SimulationConfig) error {
	if manager == nil {
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config overrides: %w", err)
	}
	if err := manager.SaveObjectProp(overridesObject, overridesProperty, data); err != nil {
		return fmt.Errorf("failed to save config overrides: %w", err)
	}
	return nil
}
