package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 模拟过程中的实体创建和销毁都不会立即生效：
// Spawn 和 DestroyEntity 只把请求写入命令缓冲区，
// 由 Flush 在 tick 末尾统一应用，保证同一 tick 内任何系统都看不到半创建/半销毁的实体。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待应用的创建/销毁命令
	commands *CommandBuffer
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1, // ID从1开始,0保留为无效ID
		components: make(map[EntityID]map[reflect.Type]interface{}),
		commands:   NewCommandBuffer(),
	}
}

// CreateEntity 立即创建新实体并返回唯一ID
// 仅用于模拟开始之前的初始化和测试，tick 内部应使用 Spawn
func (em *EntityManager) CreateEntity() EntityID {
	id := em.reserveID()
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// Spawn 预留实体ID并把创建请求写入命令缓冲区
// 实体在下一次 Flush 之后才能被查询到
func (em *EntityManager) Spawn(components ...interface{}) EntityID {
	id := em.reserveID()
	em.commands.queueCreate(id, components)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.commands.queueDestroy(id)
}

// Exists 检查实体是否已存在（已创建且未被 Flush 删除）
func (em *EntityManager) Exists(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// Count 返回当前存在的实体数量
func (em *EntityManager) Count() int {
	return len(em.components)
}

// AddComponent 为实体添加组件
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// Flush 应用命令缓冲区中所有待处理的创建和销毁请求
//
// 先应用创建，再应用销毁；同一 tick 内创建又销毁的实体不会出现在结果中。
// 每个 tick 只应在所有系统运行完之后调用一次。
//
// 返回:
//   - FlushResult: 本次实际创建和销毁的实体ID（按ID升序）
func (em *EntityManager) Flush() FlushResult {
	creates, destroys := em.commands.drain()
	result := FlushResult{}

	pendingDestroy := make(map[EntityID]bool, len(destroys))
	for _, id := range destroys {
		pendingDestroy[id] = true
	}

	for _, cmd := range creates {
		if pendingDestroy[cmd.ID] {
			// 未出生即被销毁，两条命令互相抵消
			delete(pendingDestroy, cmd.ID)
			continue
		}
		compMap := make(map[reflect.Type]interface{}, len(cmd.Components))
		for _, c := range cmd.Components {
			compMap[reflect.TypeOf(c)] = c
		}
		em.components[cmd.ID] = compMap
		result.Created = append(result.Created, cmd.ID)
	}

	for _, id := range destroys {
		if !pendingDestroy[id] {
			continue
		}
		delete(pendingDestroy, id)
		if _, exists := em.components[id]; !exists {
			continue
		}
		delete(em.components, id)
		result.Destroyed = append(result.Destroyed, id)
	}

	sortIDs(result.Created)
	sortIDs(result.Destroyed)
	return result
}

// PendingCommands 返回尚未应用的命令数量
func (em *EntityManager) PendingCommands() int {
	return em.commands.Len()
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按ID升序，保证模拟可复现）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sortIDs(result)
	return result
}

func (em *EntityManager) reserveID() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	return id
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
