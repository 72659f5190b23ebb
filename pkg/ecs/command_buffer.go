package ecs

// CreateCommand 待应用的实体创建请求
type CreateCommand struct {
	ID         EntityID
	Components []interface{}
}

// CommandBuffer 缓存一个 tick 内产生的实体创建/销毁请求
// 由 EntityManager.Flush 每个 tick 统一排空一次
type CommandBuffer struct {
	creates  []CreateCommand
	destroys []EntityID
}

// FlushResult 描述一次 Flush 实际生效的变更
type FlushResult struct {
	Created   []EntityID
	Destroyed []EntityID
}

// NewCommandBuffer 创建空的命令缓冲区
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{
		creates:  make([]CreateCommand, 0),
		destroys: make([]EntityID, 0),
	}
}

// Len 返回缓冲区中的命令总数
func (cb *CommandBuffer) Len() int {
	return len(cb.creates) + len(cb.destroys)
}

func (cb *CommandBuffer) queueCreate(id EntityID, components []interface{}) {
	comps := make([]interface{}, len(components))
	copy(comps, components)
	cb.creates = append(cb.creates, CreateCommand{ID: id, Components: comps})
}

func (cb *CommandBuffer) queueDestroy(id EntityID) {
	cb.destroys = append(cb.destroys, id)
}

// drain 取出全部命令并清空缓冲区
func (cb *CommandBuffer) drain() ([]CreateCommand, []EntityID) {
	creates, destroys := cb.creates, cb.destroys
	cb.creates = make([]CreateCommand, 0, len(creates))
	cb.destroys = make([]EntityID, 0, len(destroys))
	return creates, destroys
}
