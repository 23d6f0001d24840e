package component

// Name is the lookup key of a scene node, e.g. "Professor".
type Name string

var NameComponent = NewComponent[Name]()
