package models

import (
	"gorm.io/gorm"
)

// Category is a self-referential tree node. Siblings are ordered by name.
type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	ParentID *uint     `gorm:"index" json:"parent_id"`
	Parent   *Category `gorm:"foreignKey:ParentID" json:"-"`
}

// CategorySubtree returns the category itself followed by all of its
// descendants in pre-order, siblings ordered by name. The catalog is small,
// so the whole table is loaded once and walked in memory.
func CategorySubtree(db *gorm.DB, rootID uint) ([]Category, error) {
	var all []Category
	if err := db.Order("name").Find(&all).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]*Category, len(all))
	children := make(map[uint][]*Category)
	for i := range all {
		byID[all[i].ID] = &all[i]
	}
	// all is name-ordered, so every children slice stays name-ordered
	for i := range all {
		if all[i].ParentID != nil {
			children[*all[i].ParentID] = append(children[*all[i].ParentID], &all[i])
		}
	}

	root, ok := byID[rootID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	visited := make(map[uint]bool, len(all))
	var out []Category
	var walk func(node *Category)
	walk = func(node *Category) {
		if visited[node.ID] {
			return
		}
		visited[node.ID] = true
		out = append(out, *node)
		for _, child := range children[node.ID] {
			walk(child)
		}
	}
	walk(root)

	return out, nil
}

// CategoryAncestors returns the parent chain of a category, leaf-first,
// walking ParentID until the root. The category itself is not included.
func CategoryAncestors(db *gorm.DB, id uint) ([]Category, error) {
	var all []Category
	if err := db.Find(&all).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]*Category, len(all))
	for i := range all {
		byID[all[i].ID] = &all[i]
	}

	node, ok := byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	visited := map[uint]bool{node.ID: true}
	var out []Category
	for node.ParentID != nil {
		parent, ok := byID[*node.ParentID]
		if !ok || visited[parent.ID] {
			break
		}
		visited[parent.ID] = true
		out = append(out, *parent)
		node = parent
	}

	return out, nil
}
