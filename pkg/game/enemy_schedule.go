package game

import "github.com/tora0091/shoot-game/pkg/config"

// ScheduleEntry 计划表中的一个波次
type ScheduleEntry struct {
	ID        string
	Second    uint64 // 触发秒数
	Formation string
	Armed     bool // 触发一次后永久解除
}

// EnemySchedule 波次计划表（保持配置中的顺序）
type EnemySchedule struct {
	entries []*ScheduleEntry
}

// NewEnemySchedule 根据关卡波次创建计划表，所有条目初始为待触发
func NewEnemySchedule(waves []config.WaveConfig) *EnemySchedule {
	s := &EnemySchedule{entries: make([]*ScheduleEntry, 0, len(waves))}
	for _, w := range waves {
		s.entries = append(s.entries, &ScheduleEntry{
			ID:        w.ID,
			Second:    w.Second,
			Formation: w.Formation,
			Armed:     true,
		})
	}
	return s
}

// IsReady 条目待触发且 seconds >= 触发秒数时解除条目并返回 true
//
// 使用 >= 而不是 ==：即使恰好那一帧没有检查，下一次检查时仍会触发。
func IsReady(entry *ScheduleEntry, seconds uint64) bool {
	if entry == nil || !entry.Armed || seconds < entry.Second {
		return false
	}
	entry.Armed = false
	return true
}

// Ready 返回本次应触发的所有条目（按配置顺序），并解除它们
func (s *EnemySchedule) Ready(seconds uint64) []ScheduleEntry {
	var ready []ScheduleEntry
	for _, e := range s.entries {
		if IsReady(e, seconds) {
			ready = append(ready, *e)
		}
	}
	return ready
}

// Entry 按ID查找条目
func (s *EnemySchedule) Entry(id string) (*ScheduleEntry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// Pending 尚未触发的条目数
func (s *EnemySchedule) Pending() int {
	n := 0
	for _, e := range s.entries {
		if e.Armed {
			n++
		}
	}
	return n
}

// Len 条目总数
func (s *EnemySchedule) Len() int {
	return len(s.entries)
}
