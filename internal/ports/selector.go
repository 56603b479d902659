package ports

// Selector is the interactive collaborator that asks the user to pick one
// of the presented candidates. Select returns the chosen index and true,
// or false when the user aborted without choosing. The core never depends
// on a specific UI technology.
type Selector interface {
	Select(candidates []string) (int, bool, error)
}
