package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符（0 保留为无效ID）
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 删除是延迟执行的：DestroyEntity 只做标记，查询会跳过已标记的实体，
// 真正的移除发生在帧末的 RemoveMarkedEntities。
// 这样同一帧内先后执行的多个系统不会重复处理同一个已销毁的实体。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待删除的实体ID列表（保持标记顺序）
	entitiesToDestroy []EntityID
	// 已标记集合，用于去重和查询过滤
	marked map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
		marked:            make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
//
// 重复标记或标记不存在的实体都是空操作，返回值表示本次调用是否新增了标记。
func (em *EntityManager) DestroyEntity(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	if _, already := em.marked[id]; already {
		return false
	}
	em.marked[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
	return true
}

// IsMarkedForDestroy 检查实体是否已被标记删除
func (em *EntityManager) IsMarkedForDestroy(id EntityID) bool {
	_, ok := em.marked[id]
	return ok
}

// IsAlive 实体存在且未被标记删除
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	return !em.IsMarkedForDestroy(id)
}

// AddComponent 为实体添加组件（同类型组件会被覆盖）
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

// RemoveMarkedEntities 清理所有标记删除的实体，返回清理数量
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := 0
	for _, id := range em.entitiesToDestroy {
		if _, exists := em.components[id]; exists {
			delete(em.components, id)
			removed++
		}
		delete(em.marked, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
	return removed
}

// EntityCount 返回当前存活（未标记删除）的实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.components) - len(em.marked)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有存活实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按ID升序，保证系统遍历顺序稳定）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		if _, dead := em.marked[id]; dead {
			continue
		}
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

	slices.Sort(result)
	return result
}
