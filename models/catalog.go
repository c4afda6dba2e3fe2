package models

// Fabric is a material a customer can pick for a commissioned garment.
// Orders snapshot the fabrics they were built from, so deleting a fabric
// never retro-edits historical orders.
type Fabric struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Design is a garment style a customer can pick. Same snapshot/deletion
// rules as Fabric.
type Design struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}
