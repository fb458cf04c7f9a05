package access

// CanMutate decides whether viewer may update or delete an item owned by
// ownerID. Ownership or an elevated role suffices; anonymous viewers may
// never mutate. Reads are never gated here.
//
// This is independent of visibility: a moderator may mutate a post it could
// not discover through the follow graph.
func CanMutate(viewer Viewer, ownerID uint) bool {
	if !viewer.Authenticated {
		return false
	}
	if viewer.ID == ownerID {
		return true
	}
	return viewer.Elevated()
}
