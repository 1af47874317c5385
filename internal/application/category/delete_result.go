package category

// DeleteResult resultado de DeleteCategory. Los tres casos son excluyentes.
type DeleteResult int

const (
	DeleteOK DeleteResult = iota + 1
	DeleteNotFound
	DeleteHasChildren
)

func (r DeleteResult) String() string {
	switch r {
	case DeleteOK:
		return "deleted"
	case DeleteNotFound:
		return "not_found"
	case DeleteHasChildren:
		return "has_children"
	default:
		return "unknown"
	}
}
