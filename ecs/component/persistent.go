package component

// Persistent entities survive course reloads.
type Persistent struct {
	KeepOnReload bool
}

var PersistentComponent = NewComponent[Persistent]()
