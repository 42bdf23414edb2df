package locator

import "drift-indexer-sol/internal/logic/domain"

// FindByProgramID 先序遍历指令树，返回所有 ProgramID 匹配的节点（含任意深度）。
// 命中节点的子节点同样继续遍历。
func FindByProgramID(instructions []*domain.ReadonlyInstruction, programID string) []*domain.ReadonlyInstruction {
	var matches []*domain.ReadonlyInstruction
	for _, ix := range instructions {
		matches = collect(ix, programID, matches)
	}
	return matches
}

func collect(ix *domain.ReadonlyInstruction, programID string, acc []*domain.ReadonlyInstruction) []*domain.ReadonlyInstruction {
	if ix == nil {
		return acc
	}
	if ix.ProgramID == programID {
		acc = append(acc, ix)
	}
	for _, child := range ix.InnerInstructions {
		acc = collect(child, programID, acc)
	}
	return acc
}
