package models

// Snapshot is the whole-dataset backup document. Every collection and
// singleton appears as a required top-level key; import rejects documents
// missing any of them.
type Snapshot struct {
	Users       []User      `json:"users"`
	Fabrics     []Fabric    `json:"fabrics"`
	Designs     []Design    `json:"designs"`
	Orders      []Order     `json:"orders"`
	Messages    []Message   `json:"messages"`
	Feedback    []Feedback  `json:"feedback"`
	AppSettings AppSettings `json:"appSettings"`
	Theme       Theme       `json:"theme"`
}

// SnapshotKeys lists the required top-level keys of a backup document, in
// export order.
var SnapshotKeys = []string{
	"users", "fabrics", "designs", "orders",
	"messages", "feedback", "appSettings", "theme",
}
