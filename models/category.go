package models

// Category forms a single-level-deep tree: a category has at most one
// parent, and only root categories carry children.
type Category struct {
	ID       int64  `json:"id" bson:"_id"`
	Name     string `json:"name" bson:"name"`
	Slug     string `json:"slug" bson:"slug"`
	ParentID *int64 `json:"parent_id,omitempty" bson:"parent_id,omitempty"`
}

// CategoryNode is a root category with its sub-categories attached, used
// by the category listing endpoint.
type CategoryNode struct {
	Category
	Children []Category `json:"children"`
}
