package category

import (
	"cmp"
	"slices"
)

// childIndex ParentID -> 子分类,根分类挂在key 0下
func childIndex(all []Category) map[uint][]Category {
	index := make(map[uint][]Category, len(all))
	for _, c := range all {
		var parent uint
		if c.ParentID != nil {
			parent = *c.ParentID
		}
		index[parent] = append(index[parent], c)
	}
	for _, children := range index {
		slices.SortFunc(children, func(a, b Category) int { return cmp.Compare(a.ID, b.ID) })
	}
	return index
}

// BuildTree 由一次全量查询的结果构建分类树
// 父分类不在列表中的节点被忽略
func BuildTree(all []Category) []*Node {
	index := childIndex(all)

	var build func(parent uint) []*Node
	build = func(parent uint) []*Node {
		children := index[parent]
		nodes := make([]*Node, 0, len(children))
		for _, c := range children {
			nodes = append(nodes, &Node{ID: c.ID, Name: c.Name, Children: build(c.ID)})
		}
		return nodes
	}
	return build(0)
}

// SubtreeIDs rootID及其全部后代的ID(广度优先,rootID在首位)
func SubtreeIDs(all []Category, rootID uint) []uint {
	index := childIndex(all)

	ids := []uint{rootID}
	for i := 0; i < len(ids); i++ {
		for _, c := range index[ids[i]] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
